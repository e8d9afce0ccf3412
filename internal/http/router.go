package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/http/handlers"
)

// NewRouter wires every endpoint of the dashboard API.
func NewRouter(exposeMetrics bool) http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)
	r.Use(RequestLogger)

	r.Get("/health", handlers.HealthHandler)
	if exposeMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/dashboard", handlers.GetDashboardHandler)
	r.Get("/alerts", handlers.GetAlertsHandler)
	r.Get("/stocks", handlers.GetStocksHandler)
	r.Post("/movements", handlers.CreateMovementHandler)

	r.Route("/warehouses", func(r chi.Router) {
		r.Post("/", handlers.CreateWarehouseHandler)
		r.Get("/", handlers.GetWarehousesHandler)
		r.Get("/{id}", handlers.GetWarehouseByIDHandler)
		r.Put("/{id}", handlers.UpdateWarehouseHandler)
		r.Delete("/{id}", handlers.DeleteWarehouseHandler)
	})
	r.Route("/skus", func(r chi.Router) {
		r.Post("/", handlers.CreateSKUHandler)
		r.Get("/", handlers.GetSKUsHandler)
		r.Get("/{id}", handlers.GetSKUByIDHandler)
		r.Put("/{id}", handlers.UpdateSKUHandler)
		r.Delete("/{id}", handlers.DeleteSKUHandler)
	})
	r.Route("/inventory", func(r chi.Router) {
		r.Post("/", handlers.CreateInventoryHandler)
		r.Get("/", handlers.GetInventoryHandler)
		r.Put("/{id}", handlers.UpdateInventoryHandler)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", handlers.CreateOrderHandler)
		r.Get("/", handlers.GetOrdersHandler)
		r.Get("/{id}", handlers.GetOrderByIDHandler)
		r.Put("/{id}/status", handlers.UpdateOrderStatusHandler)
		r.Delete("/{id}", handlers.DeleteOrderHandler)
	})
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", handlers.CreateCustomerHandler)
		r.Get("/", handlers.GetCustomersHandler)
		r.Get("/{id}", handlers.GetCustomerByIDHandler)
		r.Put("/{id}", handlers.UpdateCustomerHandler)
		r.Delete("/{id}", handlers.DeleteCustomerHandler)
	})
	r.Route("/suppliers", func(r chi.Router) {
		r.Post("/", handlers.CreateSupplierHandler)
		r.Get("/", handlers.GetSuppliersHandler)
		r.Get("/{id}", handlers.GetSupplierByIDHandler)
		r.Put("/{id}", handlers.UpdateSupplierHandler)
		r.Delete("/{id}", handlers.DeleteSupplierHandler)
	})

	return r
}
