package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

func supplierFromRequest(req SupplierRequest, id int) models.Supplier {
	return models.Supplier{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Country:       req.Country,
		IsActive:      req.IsActive,
	}
}

func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateSupplier(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	created, err := supplierRepo.Create(r.Context(), supplierFromRequest(req, 0))
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierRepo.GetAll(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

func GetSupplierByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	supplier, err := supplierRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, repo.ErrSupplierNotFound)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

func UpdateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req SupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateSupplier(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	updated, err := supplierRepo.Update(r.Context(), supplierFromRequest(req, id))
	if err != nil {
		writeRepoError(w, err, repo.ErrSupplierNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := supplierRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, repo.ErrSupplierNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
