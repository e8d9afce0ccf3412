package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

func TestCreateWarehouse(t *testing.T) {
	SetWarehouseRepo(repo.NewInMemoryWarehouseRepository())

	rec := httptest.NewRecorder()
	CreateWarehouseHandler(rec, jsonRequest(http.MethodPost, "/warehouses",
		`{"name":"Paris Nord","location":"Paris","capacity_m3":1200}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[models.Warehouse](t, rec)
	if created.ID == 0 || created.Name != "Paris Nord" {
		t.Errorf("unexpected warehouse %+v", created)
	}
}

func TestCreateWarehouseValidation(t *testing.T) {
	SetWarehouseRepo(repo.NewInMemoryWarehouseRepository())

	rec := httptest.NewRecorder()
	CreateWarehouseHandler(rec, jsonRequest(http.MethodPost, "/warehouses",
		`{"name":"","capacity_m3":-5}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeBody[map[string]map[string]string](t, rec)
	if _, ok := resp["errors"]["name"]; !ok {
		t.Errorf("expected a name validation error, got %v", resp)
	}
	if _, ok := resp["errors"]["capacity_m3"]; !ok {
		t.Errorf("expected a capacity validation error, got %v", resp)
	}
}

func TestCreateWarehouseRejectsMalformedBody(t *testing.T) {
	SetWarehouseRepo(repo.NewInMemoryWarehouseRepository())

	rec := httptest.NewRecorder()
	CreateWarehouseHandler(rec, jsonRequest(http.MethodPost, "/warehouses", `{"name":`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetWarehouseByID(t *testing.T) {
	memRepo := repo.NewInMemoryWarehouseRepository()
	SetWarehouseRepo(memRepo)
	created, _ := memRepo.Create(context.Background(), models.Warehouse{Name: "Lyon Sud", Location: "Lyon"})

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/warehouses/1", nil), "1")
	GetWarehouseByIDHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decodeBody[models.Warehouse](t, rec)
	if got.ID != created.ID || got.Name != "Lyon Sud" {
		t.Errorf("unexpected warehouse %+v", got)
	}
}

func TestGetWarehouseByIDNotFound(t *testing.T) {
	SetWarehouseRepo(repo.NewInMemoryWarehouseRepository())

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/warehouses/99", nil), "99")
	GetWarehouseByIDHandler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateWarehouse(t *testing.T) {
	memRepo := repo.NewInMemoryWarehouseRepository()
	SetWarehouseRepo(memRepo)
	memRepo.Create(context.Background(), models.Warehouse{Name: "Old Name"})

	rec := httptest.NewRecorder()
	req := withID(jsonRequest(http.MethodPut, "/warehouses/1",
		`{"name":"New Name","location":"Marseille","capacity_m3":900}`), "1")
	UpdateWarehouseHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeBody[models.Warehouse](t, rec)
	if got.Name != "New Name" || got.Location != "Marseille" {
		t.Errorf("unexpected warehouse %+v", got)
	}
}

func TestDeleteWarehouse(t *testing.T) {
	memRepo := repo.NewInMemoryWarehouseRepository()
	SetWarehouseRepo(memRepo)
	memRepo.Create(context.Background(), models.Warehouse{Name: "Short-lived"})

	rec := httptest.NewRecorder()
	DeleteWarehouseHandler(rec, withID(httptest.NewRequest(http.MethodDelete, "/warehouses/1", nil), "1"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	DeleteWarehouseHandler(rec, withID(httptest.NewRequest(http.MethodDelete, "/warehouses/1", nil), "1"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestGetWarehousesInvalidID(t *testing.T) {
	SetWarehouseRepo(repo.NewInMemoryWarehouseRepository())

	rec := httptest.NewRecorder()
	GetWarehouseByIDHandler(rec, withID(httptest.NewRequest(http.MethodGet, "/warehouses/abc", nil), "abc"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
