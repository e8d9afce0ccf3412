package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int) (models.Order, error)
	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error
	Delete(ctx context.Context, id int) error
}
