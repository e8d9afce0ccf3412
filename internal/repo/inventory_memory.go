package repo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/stock"
)

type memPosition struct {
	inv           models.Inventory
	warehouseName string
	skuCode       string
	productName   string
	category      string
	unitCost      decimal.Decimal
}

// InMemoryInventoryRepository is an in-memory implementation of
// InventoryRepository. Seed joined rows with AddPosition.
type InMemoryInventoryRepository struct {
	positions []memPosition
	movements []models.Movement
	nextID    int
}

func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{nextID: 1}
}

// AddPosition seeds one position together with the joined warehouse and SKU
// attributes the stock view needs.
func (r *InMemoryInventoryRepository) AddPosition(inv models.Inventory, warehouseName, skuCode, productName, category string, unitCost decimal.Decimal) models.Inventory {
	inv.ID = r.nextID
	r.nextID++
	r.positions = append(r.positions, memPosition{
		inv:           inv,
		warehouseName: warehouseName,
		skuCode:       skuCode,
		productName:   productName,
		category:      category,
		unitCost:      unitCost,
	})
	return inv
}

// Movements returns the movement log accumulated by ApplyMovement.
func (r *InMemoryInventoryRepository) Movements() []models.Movement {
	return r.movements
}

func (r *InMemoryInventoryRepository) Create(_ context.Context, inv models.Inventory) (models.Inventory, error) {
	return r.AddPosition(inv, "", "", "", "", decimal.Zero), nil
}

func (r *InMemoryInventoryRepository) GetAll(_ context.Context) ([]models.Inventory, error) {
	out := make([]models.Inventory, 0, len(r.positions))
	for _, p := range r.positions {
		out = append(out, p.inv)
	}
	return out, nil
}

func (r *InMemoryInventoryRepository) GetByID(_ context.Context, id int) (models.Inventory, error) {
	for _, p := range r.positions {
		if p.inv.ID == id {
			return p.inv, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) Update(_ context.Context, inv models.Inventory) (models.Inventory, error) {
	for i, p := range r.positions {
		if p.inv.ID == inv.ID {
			r.positions[i].inv = inv
			return inv, nil
		}
	}
	return models.Inventory{}, ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) Delete(_ context.Context, id int) error {
	for i, p := range r.positions {
		if p.inv.ID == id {
			r.positions = append(r.positions[:i], r.positions[i+1:]...)
			return nil
		}
	}
	return ErrInventoryNotFound
}

func (r *InMemoryInventoryRepository) StockView(_ context.Context, f StockFilter) ([]models.StockRow, error) {
	out := make([]models.StockRow, 0, len(r.positions))
	for _, p := range r.positions {
		if f.Warehouse != "" && p.warehouseName != f.Warehouse {
			continue
		}
		if f.Category != "" && p.category != f.Category {
			continue
		}
		row := models.StockRow{
			InventoryID:       p.inv.ID,
			WarehouseName:     p.warehouseName,
			SKUCode:           p.skuCode,
			ProductName:       p.productName,
			Category:          p.category,
			QuantityAvailable: p.inv.QuantityAvailable,
			QuantityReserved:  p.inv.QuantityReserved,
			SafetyStock:       p.inv.SafetyStock,
			ReorderPoint:      p.inv.ReorderPoint,
			UnitCost:          p.unitCost,
			StockValue:        p.unitCost.Mul(decimal.NewFromInt(int64(p.inv.QuantityAvailable))),
		}
		row.Health = string(stock.ClassifyNullable(row.QuantityAvailable, row.SafetyStock, row.ReorderPoint))
		if f.Health != "" && row.Health != string(f.Health) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *InMemoryInventoryRepository) ApplyMovement(_ context.Context, m models.Movement) error {
	if m.Quantity <= 0 {
		return fmt.Errorf("movement quantity must be positive, got %d", m.Quantity)
	}
	for i, p := range r.positions {
		if p.inv.SKUID != m.SKUID || p.inv.WarehouseID != m.WarehouseID {
			continue
		}
		switch m.Type {
		case models.MovementIn:
			r.positions[i].inv.QuantityAvailable += m.Quantity
		case models.MovementOut:
			if p.inv.QuantityAvailable < m.Quantity {
				return ErrInsufficientStock
			}
			r.positions[i].inv.QuantityAvailable -= m.Quantity
		default:
			return fmt.Errorf("unknown movement type %q", m.Type)
		}
		r.movements = append(r.movements, m)
		return nil
	}
	return ErrInventoryNotFound
}
