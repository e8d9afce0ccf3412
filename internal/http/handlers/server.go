package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/kpi"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

// KPIProvider is the slice of the KPI service the dashboard handler uses.
type KPIProvider interface {
	TotalOrders(ctx context.Context) (kpi.Value[int64], error)
	TotalStockValue(ctx context.Context) (kpi.Value[decimal.Decimal], error)
	CriticalStocksCount(ctx context.Context) (kpi.Value[int64], error)
	OTIFRate(ctx context.Context) (kpi.Value[float64], error)
	OrdersTrend(ctx context.Context) (kpi.Series, error)
	StockDistribution(ctx context.Context) (kpi.Distribution, error)
}

// AlertSource produces the current alert list.
type AlertSource interface {
	CriticalStock(ctx context.Context) ([]models.Alert, error)
}

// SnapshotCache holds rendered dashboard snapshots. Nil disables caching.
type SnapshotCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

var (
	warehouseRepo repo.WarehouseRepository
	skuRepo       repo.SKURepository
	inventoryRepo repo.InventoryRepository
	orderRepo     repo.OrderRepository
	customerRepo  repo.CustomerRepository
	supplierRepo  repo.SupplierRepository

	kpiProvider KPIProvider
	alertSource AlertSource

	snapshotCache SnapshotCache
	snapshotTTL   = 30 * time.Second

	logger = slog.Default()
)

func SetWarehouseRepo(r repo.WarehouseRepository) { warehouseRepo = r }
func SetSKURepo(r repo.SKURepository)             { skuRepo = r }
func SetInventoryRepo(r repo.InventoryRepository) { inventoryRepo = r }
func SetOrderRepo(r repo.OrderRepository)         { orderRepo = r }
func SetCustomerRepo(r repo.CustomerRepository)   { customerRepo = r }
func SetSupplierRepo(r repo.SupplierRepository)   { supplierRepo = r }

func SetKPIProvider(p KPIProvider) { kpiProvider = p }
func SetAlertSource(a AlertSource) { alertSource = a }

func SetSnapshotCache(c SnapshotCache, ttl time.Duration) {
	snapshotCache = c
	if ttl > 0 {
		snapshotTTL = ttl
	}
}

func SetLogger(l *slog.Logger) { logger = l }
