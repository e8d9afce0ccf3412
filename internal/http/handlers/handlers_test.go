package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/kpi"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

func TestMain(m *testing.M) {
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.Run()
}

// withID attaches a chi route context carrying the {id} parameter, so
// handlers can be exercised without a full router.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// stubKPIs implements KPIProvider with canned values.
type stubKPIs struct {
	totalOrders  kpi.Value[int64]
	stockValue   kpi.Value[decimal.Decimal]
	critical     kpi.Value[int64]
	otif         kpi.Value[float64]
	trend        kpi.Series
	distribution kpi.Distribution
	err          error
}

func (s *stubKPIs) TotalOrders(context.Context) (kpi.Value[int64], error) {
	return s.totalOrders, s.err
}

func (s *stubKPIs) TotalStockValue(context.Context) (kpi.Value[decimal.Decimal], error) {
	return s.stockValue, s.err
}

func (s *stubKPIs) CriticalStocksCount(context.Context) (kpi.Value[int64], error) {
	return s.critical, s.err
}

func (s *stubKPIs) OTIFRate(context.Context) (kpi.Value[float64], error) {
	return s.otif, s.err
}

func (s *stubKPIs) OrdersTrend(context.Context) (kpi.Series, error) {
	return s.trend, s.err
}

func (s *stubKPIs) StockDistribution(context.Context) (kpi.Distribution, error) {
	return s.distribution, s.err
}

type stubAlerts struct {
	alerts []models.Alert
	err    error
}

func (s *stubAlerts) CriticalStock(context.Context) ([]models.Alert, error) {
	return s.alerts, s.err
}

// mapCache is an in-memory SnapshotCache round-tripping through JSON the
// way the redis-backed one does.
type mapCache struct {
	entries map[string][]byte
	sets    int
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[string][]byte)} }

func (c *mapCache) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (c *mapCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func intPtr(n int) *int { return &n }

func seedInventory(t *testing.T) *repo.InMemoryInventoryRepository {
	t.Helper()
	r := repo.NewInMemoryInventoryRepository()
	r.AddPosition(models.Inventory{
		SKUID: 1, WarehouseID: 1,
		QuantityAvailable: 5, SafetyStock: intPtr(10), ReorderPoint: intPtr(20),
	}, "Paris Nord", "SKU-001", "Steel Bolts", "Hardware", decimal.NewFromFloat(2.50))
	r.AddPosition(models.Inventory{
		SKUID: 2, WarehouseID: 1,
		QuantityAvailable: 50, SafetyStock: intPtr(10), ReorderPoint: intPtr(20),
	}, "Paris Nord", "SKU-002", "Copper Wire", "Electronics", decimal.NewFromFloat(8.00))
	return r
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

var errConnDown = &db.Error{Kind: db.KindConnection, Err: errors.New("dial tcp: connection refused")}
