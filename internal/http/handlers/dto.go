package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/kpi"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

type WarehouseRequest struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	CapacityM3 float64 `json:"capacity_m3"`
}

type SKURequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

type InventoryRequest struct {
	SKUID             int  `json:"sku_id"`
	WarehouseID       int  `json:"warehouse_id"`
	QuantityAvailable int  `json:"quantity_available"`
	QuantityReserved  int  `json:"quantity_reserved"`
	SafetyStock       *int `json:"safety_stock"`
	ReorderPoint      *int `json:"reorder_point"`
}

type MovementRequest struct {
	SKUID       int    `json:"sku_id"`
	WarehouseID int    `json:"warehouse_id"`
	Type        string `json:"type"` // IN or OUT
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason"`
}

type OrderRequest struct {
	Number     string          `json:"number"`
	CustomerID int             `json:"customer_id"`
	OrderDate  string          `json:"order_date"` // YYYY-MM-DD
	Status     string          `json:"status"`
	Priority   string          `json:"priority"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type CustomerRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	IsActive      bool   `json:"is_active"`
}

type SupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Country       string `json:"country"`
	IsActive      bool   `json:"is_active"`
}

// DashboardResponse is the full dashboard snapshot. The Demo flags mark
// series that were substituted with synthetic sample data because the
// underlying metric came back Empty; real metrics are never fabricated.
type DashboardResponse struct {
	TotalOrders           kpi.Value[int64]           `json:"total_orders"`
	TotalStockValue       kpi.Value[decimal.Decimal] `json:"total_stock_value"`
	CriticalStocks        kpi.Value[int64]           `json:"critical_stocks"`
	OTIFRate              kpi.Value[float64]         `json:"otif_rate"`
	OrdersTrend           kpi.Series                 `json:"orders_trend"`
	OrdersTrendDemo       bool                       `json:"orders_trend_demo"`
	StockDistribution     kpi.Distribution           `json:"stock_distribution"`
	StockDistributionDemo bool                       `json:"stock_distribution_demo"`
	Alerts                []models.Alert             `json:"alerts"`
}
