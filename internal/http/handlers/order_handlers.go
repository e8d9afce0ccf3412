package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

// CreateOrderHandler registers a customer order.
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateOrder(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	orderDate, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"order_date": "Date must be YYYY-MM-DD"}})
		return
	}

	created, err := orderRepo.Create(r.Context(), models.Order{
		Number:     req.Number,
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		Status:     models.OrderStatus(req.Status),
		Priority:   req.Priority,
		TotalValue: req.TotalValue,
	})
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetOrdersHandler lists orders, most recent first.
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByIDHandler returns one order.
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	order, err := orderRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, repo.ErrOrderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderStatusHandler advances an order through its lifecycle.
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req OrderStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"status": "Unknown order status"}})
		return
	}

	if err := orderRepo.UpdateStatus(r.Context(), id, status); err != nil {
		writeRepoError(w, err, repo.ErrOrderNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrderHandler removes an order.
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := orderRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, repo.ErrOrderNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
