package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/stock"
)

// GetStocksHandler returns the labeled inventory view, optionally filtered
// by warehouse, category, or health tier via query parameters.
func GetStocksHandler(w http.ResponseWriter, r *http.Request) {
	f := repo.StockFilter{
		Warehouse: r.URL.Query().Get("warehouse"),
		Category:  r.URL.Query().Get("category"),
		Health:    stock.Health(r.URL.Query().Get("health")),
	}
	rows, err := inventoryRepo.StockView(r.Context(), f)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// CreateInventoryHandler opens a new inventory position.
func CreateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateInventory(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	created, err := inventoryRepo.Create(r.Context(), models.Inventory{
		SKUID:             req.SKUID,
		WarehouseID:       req.WarehouseID,
		QuantityAvailable: req.QuantityAvailable,
		QuantityReserved:  req.QuantityReserved,
		SafetyStock:       req.SafetyStock,
		ReorderPoint:      req.ReorderPoint,
	})
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetInventoryHandler lists raw inventory positions.
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	positions, err := inventoryRepo.GetAll(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, positions)
}

// UpdateInventoryHandler replaces a position's quantities and thresholds.
func UpdateInventoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req InventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateInventory(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	updated, err := inventoryRepo.Update(r.Context(), models.Inventory{
		ID:                id,
		SKUID:             req.SKUID,
		WarehouseID:       req.WarehouseID,
		QuantityAvailable: req.QuantityAvailable,
		QuantityReserved:  req.QuantityReserved,
		SafetyStock:       req.SafetyStock,
		ReorderPoint:      req.ReorderPoint,
	})
	if err != nil {
		writeRepoError(w, err, repo.ErrInventoryNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CreateMovementHandler records an IN/OUT movement. The movement log and
// the quantity adjustment commit in a single transaction.
func CreateMovementHandler(w http.ResponseWriter, r *http.Request) {
	var req MovementRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateMovement(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	m := models.Movement{
		SKUID:       req.SKUID,
		WarehouseID: req.WarehouseID,
		Type:        models.MovementType(req.Type),
		Quantity:    req.Quantity,
		Reason:      req.Reason,
	}
	if err := inventoryRepo.ApplyMovement(r.Context(), m); err != nil {
		switch {
		case errors.Is(err, repo.ErrInsufficientStock):
			http.Error(w, "insufficient stock", http.StatusConflict)
		case errors.Is(err, repo.ErrInventoryNotFound):
			http.Error(w, "inventory position not found", http.StatusNotFound)
		default:
			writeDBError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, m)
}
