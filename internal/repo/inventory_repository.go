package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/stock"
)

// StockFilter narrows the labeled stock view. Zero values mean "all".
type StockFilter struct {
	Warehouse string
	Category  string
	Health    stock.Health
}

// InventoryRepository defines the interface for inventory position data
// operations, including the labeled stock view behind the stocks screen and
// IN/OUT movements.
type InventoryRepository interface {
	Create(ctx context.Context, inv models.Inventory) (models.Inventory, error)
	GetAll(ctx context.Context) ([]models.Inventory, error)
	GetByID(ctx context.Context, id int) (models.Inventory, error)
	Update(ctx context.Context, inv models.Inventory) (models.Inventory, error)
	Delete(ctx context.Context, id int) error

	// StockView returns inventory joined with warehouses and SKUs, each row
	// carrying its computed stock value and health label.
	StockView(ctx context.Context, f StockFilter) ([]models.StockRow, error)

	// ApplyMovement records one IN/OUT movement and adjusts the position's
	// available quantity. Both effects happen in a single transaction; an
	// OUT movement that would drive the quantity negative is rejected with
	// ErrInsufficientStock.
	ApplyMovement(ctx context.Context, m models.Movement) error
}
