package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/kpi"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

func populatedKPIs() *stubKPIs {
	return &stubKPIs{
		totalOrders: kpi.Value[int64]{Val: 156},
		stockValue:  kpi.Value[decimal.Decimal]{Val: decimal.NewFromInt(50000)},
		critical:    kpi.Value[int64]{Val: 3},
		otif:        kpi.Value[float64]{Val: 87.5},
		trend: kpi.Series{Points: []kpi.TrendPoint{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Count: 12},
		}},
		distribution: kpi.Distribution{Items: []kpi.CategoryQuantity{
			{Category: "Hardware", Quantity: 400},
		}},
	}
}

func TestDashboardWithRealData(t *testing.T) {
	SetKPIProvider(populatedKPIs())
	SetAlertSource(&stubAlerts{alerts: []models.Alert{
		{Type: "STOCK_CRITICAL", Message: "Critical stock: Steel Bolts", Priority: models.PriorityHigh},
	}})
	SetSnapshotCache(nil, 0)

	rec := httptest.NewRecorder()
	GetDashboardHandler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[DashboardResponse](t, rec)
	if resp.TotalOrders.Val != 156 || resp.TotalOrders.Empty {
		t.Errorf("unexpected total orders %+v", resp.TotalOrders)
	}
	if resp.OrdersTrendDemo || resp.StockDistributionDemo {
		t.Error("real series must not carry demo flags")
	}
	if len(resp.Alerts) != 1 || resp.Alerts[0].Priority != models.PriorityHigh {
		t.Errorf("unexpected alerts %+v", resp.Alerts)
	}
}

func TestDashboardSubstitutesSampleSeriesWhenEmpty(t *testing.T) {
	stub := populatedKPIs()
	stub.trend = kpi.Series{Empty: true}
	stub.distribution = kpi.Distribution{Empty: true}
	SetKPIProvider(stub)
	SetAlertSource(&stubAlerts{})
	SetSnapshotCache(nil, 0)

	rec := httptest.NewRecorder()
	GetDashboardHandler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody[DashboardResponse](t, rec)
	if !resp.OrdersTrendDemo {
		t.Error("empty trend must be replaced by the sample series and flagged")
	}
	if len(resp.OrdersTrend.Points) != 7 {
		t.Errorf("sample trend must have 7 points, got %d", len(resp.OrdersTrend.Points))
	}
	if !resp.StockDistributionDemo {
		t.Error("empty distribution must be replaced by the sample data and flagged")
	}
	if len(resp.StockDistribution.Items) == 0 {
		t.Error("sample distribution must not be empty")
	}
}

func TestDashboardEmptyScalarsStayEmpty(t *testing.T) {
	stub := populatedKPIs()
	stub.stockValue = kpi.Value[decimal.Decimal]{Empty: true}
	stub.otif = kpi.Value[float64]{Empty: true}
	SetKPIProvider(stub)
	SetAlertSource(&stubAlerts{})
	SetSnapshotCache(nil, 0)

	rec := httptest.NewRecorder()
	GetDashboardHandler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	resp := decodeBody[DashboardResponse](t, rec)
	if !resp.TotalStockValue.Empty || !resp.OTIFRate.Empty {
		t.Error("empty scalar metrics must keep their Empty flag, not gain fabricated values")
	}
}

func TestDashboardConnectionFailureIs503(t *testing.T) {
	SetKPIProvider(&stubKPIs{err: errConnDown})
	SetAlertSource(&stubAlerts{})
	SetSnapshotCache(nil, 0)

	rec := httptest.NewRecorder()
	GetDashboardHandler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestDashboardServedFromCacheOnSecondHit(t *testing.T) {
	cache := newMapCache()
	SetKPIProvider(populatedKPIs())
	SetAlertSource(&stubAlerts{})
	SetSnapshotCache(cache, time.Minute)
	defer SetSnapshotCache(nil, 0)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		GetDashboardHandler(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
	if cache.sets != 1 {
		t.Errorf("second hit should come from the cache, got %d cache writes", cache.sets)
	}
}

func TestGetAlertsHandler(t *testing.T) {
	SetAlertSource(&stubAlerts{alerts: []models.Alert{
		{Type: "STOCK_CRITICAL", Message: "Critical stock: Copper Wire", Priority: models.PriorityHigh},
	}})

	rec := httptest.NewRecorder()
	GetAlertsHandler(rec, httptest.NewRequest(http.MethodGet, "/alerts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	alerts := decodeBody[[]models.Alert](t, rec)
	if len(alerts) != 1 || alerts[0].Message != "Critical stock: Copper Wire" {
		t.Errorf("unexpected alerts %+v", alerts)
	}
}

func TestGetAlertsConnectionFailureIs503(t *testing.T) {
	SetAlertSource(&stubAlerts{err: errConnDown})

	rec := httptest.NewRecorder()
	GetAlertsHandler(rec, httptest.NewRequest(http.MethodGet, "/alerts", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}
