package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// SKURepository defines the interface for SKU data operations.
type SKURepository interface {
	Create(ctx context.Context, s models.SKU) (models.SKU, error)
	GetAll(ctx context.Context) ([]models.SKU, error)
	GetByID(ctx context.Context, id int) (models.SKU, error)
	GetByCode(ctx context.Context, code string) (models.SKU, error)
	Update(ctx context.Context, s models.SKU) (models.SKU, error)
	Delete(ctx context.Context, id int) error
}
