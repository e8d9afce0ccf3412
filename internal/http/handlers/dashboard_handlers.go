package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/kpi"
)

const snapshotKey = "dashboard:snapshot"

// GetDashboardHandler assembles the full dashboard snapshot: every KPI plus
// the alert list. Empty metrics keep their Empty flag; only the two series
// are substituted with the documented sample data, marked by their Demo
// flags so the UI can label them. A database failure surfaces as an error
// status, never as fabricated numbers.
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if snapshotCache != nil {
		var cached DashboardResponse
		ok, err := snapshotCache.Get(ctx, snapshotKey, &cached)
		if err != nil {
			logger.Warn("snapshot cache read failed", "err", err)
		} else if ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	var resp DashboardResponse
	var err error

	if resp.TotalOrders, err = kpiProvider.TotalOrders(ctx); err != nil {
		writeDBError(w, err)
		return
	}
	if resp.TotalStockValue, err = kpiProvider.TotalStockValue(ctx); err != nil {
		writeDBError(w, err)
		return
	}
	if resp.CriticalStocks, err = kpiProvider.CriticalStocksCount(ctx); err != nil {
		writeDBError(w, err)
		return
	}
	if resp.OTIFRate, err = kpiProvider.OTIFRate(ctx); err != nil {
		writeDBError(w, err)
		return
	}
	if resp.OrdersTrend, err = kpiProvider.OrdersTrend(ctx); err != nil {
		writeDBError(w, err)
		return
	}
	if resp.OrdersTrend.Empty {
		resp.OrdersTrend = kpi.SampleOrdersTrend(time.Now())
		resp.OrdersTrendDemo = true
	}
	if resp.StockDistribution, err = kpiProvider.StockDistribution(ctx); err != nil {
		writeDBError(w, err)
		return
	}
	if resp.StockDistribution.Empty {
		resp.StockDistribution = kpi.SampleStockDistribution()
		resp.StockDistributionDemo = true
	}
	if resp.Alerts, err = alertSource.CriticalStock(ctx); err != nil {
		writeDBError(w, err)
		return
	}

	if snapshotCache != nil {
		if err := snapshotCache.Set(ctx, snapshotKey, resp, snapshotTTL); err != nil {
			logger.Warn("snapshot cache write failed", "err", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetAlertsHandler returns the current alert list on its own.
func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	alerts, err := alertSource.CriticalStock(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// HealthHandler reports process liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
