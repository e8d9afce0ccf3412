package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// InMemoryWarehouseRepository is an in-memory implementation of
// WarehouseRepository, used by the handler tests.
type InMemoryWarehouseRepository struct {
	warehouses []models.Warehouse
	nextID     int
}

func NewInMemoryWarehouseRepository() *InMemoryWarehouseRepository {
	return &InMemoryWarehouseRepository{nextID: 1}
}

func (r *InMemoryWarehouseRepository) Create(_ context.Context, w models.Warehouse) (models.Warehouse, error) {
	w.ID = r.nextID
	r.nextID++
	r.warehouses = append(r.warehouses, w)
	return w, nil
}

func (r *InMemoryWarehouseRepository) GetAll(_ context.Context) ([]models.Warehouse, error) {
	out := make([]models.Warehouse, len(r.warehouses))
	copy(out, r.warehouses)
	return out, nil
}

func (r *InMemoryWarehouseRepository) GetByID(_ context.Context, id int) (models.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Warehouse{}, ErrWarehouseNotFound
}

func (r *InMemoryWarehouseRepository) Update(_ context.Context, w models.Warehouse) (models.Warehouse, error) {
	for i, existing := range r.warehouses {
		if existing.ID == w.ID {
			r.warehouses[i] = w
			return w, nil
		}
	}
	return models.Warehouse{}, ErrWarehouseNotFound
}

func (r *InMemoryWarehouseRepository) Delete(_ context.Context, id int) error {
	for i, w := range r.warehouses {
		if w.ID == id {
			r.warehouses = append(r.warehouses[:i], r.warehouses[i+1:]...)
			return nil
		}
	}
	return ErrWarehouseNotFound
}
