package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

// CreateWarehouseHandler adds a warehouse.
func CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req WarehouseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateWarehouse(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	created, err := warehouseRepo.Create(r.Context(), models.Warehouse{
		Name:       req.Name,
		Location:   req.Location,
		CapacityM3: req.CapacityM3,
	})
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetWarehousesHandler lists all warehouses.
func GetWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	warehouses, err := warehouseRepo.GetAll(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, warehouses)
}

// GetWarehouseByIDHandler returns one warehouse.
func GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	warehouse, err := warehouseRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, repo.ErrWarehouseNotFound)
		return
	}
	writeJSON(w, http.StatusOK, warehouse)
}

// UpdateWarehouseHandler replaces a warehouse's attributes.
func UpdateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req WarehouseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateWarehouse(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	updated, err := warehouseRepo.Update(r.Context(), models.Warehouse{
		ID:         id,
		Name:       req.Name,
		Location:   req.Location,
		CapacityM3: req.CapacityM3,
	})
	if err != nil {
		writeRepoError(w, err, repo.ErrWarehouseNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteWarehouseHandler removes a warehouse.
func DeleteWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := warehouseRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, repo.ErrWarehouseNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
