package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// WarehouseRepository defines the interface for warehouse data operations.
type WarehouseRepository interface {
	Create(ctx context.Context, w models.Warehouse) (models.Warehouse, error)
	GetAll(ctx context.Context) ([]models.Warehouse, error)
	GetByID(ctx context.Context, id int) (models.Warehouse, error)
	Update(ctx context.Context, w models.Warehouse) (models.Warehouse, error)
	Delete(ctx context.Context, id int) error
}
