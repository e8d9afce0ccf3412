package models

import "github.com/shopspring/decimal"

// Inventory is the stock position of one SKU in one warehouse. SafetyStock
// and ReorderPoint are nullable in the schema; nil means the threshold was
// never configured.
type Inventory struct {
	ID                int    `json:"id"`
	SKUID             int    `json:"sku_id"`
	WarehouseID       int    `json:"warehouse_id"`
	QuantityAvailable int    `json:"quantity_available"`
	QuantityReserved  int    `json:"quantity_reserved"`
	SafetyStock       *int   `json:"safety_stock"`
	ReorderPoint      *int   `json:"reorder_point"`
}

// StockRow is one row of the labeled inventory view consumed by the stocks
// screen: the position joined with its warehouse and SKU, the computed stock
// value, and the health label.
type StockRow struct {
	InventoryID       int             `json:"inventory_id"`
	WarehouseName     string          `json:"warehouse_name"`
	SKUCode           string          `json:"sku_code"`
	ProductName       string          `json:"product_name"`
	Category          string          `json:"category"`
	QuantityAvailable int             `json:"quantity_available"`
	QuantityReserved  int             `json:"quantity_reserved"`
	SafetyStock       *int            `json:"safety_stock"`
	ReorderPoint      *int            `json:"reorder_point"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	StockValue        decimal.Decimal `json:"stock_value"`
	Health            string          `json:"health"`
}

// MovementType tags a stock movement direction.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Movement records one IN/OUT adjustment of an inventory position.
type Movement struct {
	SKUID       int          `json:"sku_id"`
	WarehouseID int          `json:"warehouse_id"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Reason      string       `json:"reason"`
}
