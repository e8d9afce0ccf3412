package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

func customerFromRequest(req CustomerRequest, id int) models.Customer {
	return models.Customer{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		IsActive:      req.IsActive,
	}
}

func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCustomer(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	created, err := customerRepo.Create(r.Context(), customerFromRequest(req, 0))
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func GetCustomerByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	customer, err := customerRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, repo.ErrCustomerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCustomer(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	updated, err := customerRepo.Update(r.Context(), customerFromRequest(req, id))
	if err != nil {
		writeRepoError(w, err, repo.ErrCustomerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := customerRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, repo.ErrCustomerNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
