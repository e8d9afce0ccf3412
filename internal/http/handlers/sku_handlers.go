package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

// CreateSKUHandler adds a SKU to the catalog.
func CreateSKUHandler(w http.ResponseWriter, r *http.Request) {
	var req SKURequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateSKU(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	created, err := skuRepo.Create(r.Context(), models.SKU{
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
		UnitCost: req.UnitCost,
	})
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetSKUsHandler lists the catalog.
func GetSKUsHandler(w http.ResponseWriter, r *http.Request) {
	skus, err := skuRepo.GetAll(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skus)
}

// GetSKUByIDHandler returns one SKU.
func GetSKUByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	sku, err := skuRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, repo.ErrSKUNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sku)
}

// UpdateSKUHandler replaces a SKU's attributes.
func UpdateSKUHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req SKURequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateSKU(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	updated, err := skuRepo.Update(r.Context(), models.SKU{
		ID:       id,
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
		UnitCost: req.UnitCost,
	})
	if err != nil {
		writeRepoError(w, err, repo.ErrSKUNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteSKUHandler removes a SKU.
func DeleteSKUHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := skuRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, repo.ErrSKUNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
