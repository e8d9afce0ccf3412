package models

import "github.com/shopspring/decimal"

// SKU identifies a distinct product variant. Code is the unique business key.
type SKU struct {
	ID       int             `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}
