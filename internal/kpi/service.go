// Package kpi computes the dashboard's business metrics from query results.
// Every metric distinguishes three outcomes: a value, an explicit Empty
// condition (no data yet), and a query error. Empty and error are never
// conflated.
package kpi

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
)

// Queryer runs one read statement. Satisfied by *db.Executor.
type Queryer interface {
	Query(ctx context.Context, stmt string, args ...any) (*db.Table, error)
}

type Service struct {
	q   Queryer
	log *slog.Logger
}

func NewService(q Queryer, log *slog.Logger) *Service {
	return &Service{q: q, log: log}
}

// TotalOrders counts all orders.
func (s *Service) TotalOrders(ctx context.Context) (Value[int64], error) {
	t, err := s.q.Query(ctx, `SELECT COUNT(*) AS count FROM orders`)
	if err != nil {
		return Value[int64]{}, err
	}
	return scalarInt(t, "count"), nil
}

// TotalStockValue sums quantity_available x unit_cost across all positions.
func (s *Service) TotalStockValue(ctx context.Context) (Value[decimal.Decimal], error) {
	t, err := s.q.Query(ctx, `
		SELECT SUM(i.quantity_available * s.unit_cost) AS total_value
		FROM inventory i
		JOIN skus s ON i.sku_id = s.sku_id`)
	if err != nil {
		return Value[decimal.Decimal]{}, err
	}
	if t.Empty() {
		return Value[decimal.Decimal]{Empty: true}, nil
	}
	d, ok := db.AsDecimal(t.Value(0, "total_value"))
	if !ok {
		// NULL aggregate: the tables are empty.
		return Value[decimal.Decimal]{Empty: true}, nil
	}
	return Value[decimal.Decimal]{Val: d}, nil
}

// CriticalStocksCount counts positions at or below their safety stock.
func (s *Service) CriticalStocksCount(ctx context.Context) (Value[int64], error) {
	t, err := s.q.Query(ctx, `
		SELECT COUNT(*) AS count
		FROM inventory
		WHERE quantity_available <= safety_stock`)
	if err != nil {
		return Value[int64]{}, err
	}
	return scalarInt(t, "count"), nil
}

// OTIFRate is the percentage of delivered shipments that arrived on or
// before their estimated date. In-flight shipments (no actual delivery yet)
// are excluded from the denominator; with no delivered shipments at all the
// result is Empty.
func (s *Service) OTIFRate(ctx context.Context) (Value[float64], error) {
	t, err := s.q.Query(ctx, `
		SELECT
			COUNT(CASE WHEN actual_delivery <= estimated_delivery THEN 1 END) * 100.0 /
			NULLIF(COUNT(*), 0) AS otif_rate
		FROM shipments
		WHERE actual_delivery IS NOT NULL`)
	if err != nil {
		return Value[float64]{}, err
	}
	if t.Empty() {
		return Value[float64]{Empty: true}, nil
	}
	f, ok := db.AsFloat64(t.Value(0, "otif_rate"))
	if !ok {
		return Value[float64]{Empty: true}, nil
	}
	return Value[float64]{Val: f}, nil
}

// OrdersTrend returns per-day order counts for the trailing 30 days in
// ascending date order. An empty orders table yields Series{Empty: true};
// see SampleOrdersTrend for the presentation fallback.
func (s *Service) OrdersTrend(ctx context.Context) (Series, error) {
	t, err := s.q.Query(ctx, `
		SELECT order_date AS date, COUNT(*) AS count
		FROM orders
		WHERE order_date >= CURRENT_DATE - INTERVAL '30 days'
		GROUP BY order_date
		ORDER BY order_date`)
	if err != nil {
		return Series{}, err
	}
	if t.Empty() {
		return Series{Empty: true}, nil
	}
	series := Series{Points: make([]TrendPoint, 0, t.Len())}
	for i := range t.Rows {
		date, ok := db.AsTime(t.Value(i, "date"))
		if !ok {
			continue
		}
		count, _ := db.AsInt64(t.Value(i, "count"))
		series.Points = append(series.Points, TrendPoint{Date: date, Count: count})
	}
	return series, nil
}

// StockDistribution sums quantity by SKU category.
func (s *Service) StockDistribution(ctx context.Context) (Distribution, error) {
	t, err := s.q.Query(ctx, `
		SELECT s.category, SUM(i.quantity_available) AS quantity
		FROM inventory i
		JOIN skus s ON i.sku_id = s.sku_id
		GROUP BY s.category`)
	if err != nil {
		return Distribution{}, err
	}
	if t.Empty() {
		return Distribution{Empty: true}, nil
	}
	dist := Distribution{Items: make([]CategoryQuantity, 0, t.Len())}
	for i := range t.Rows {
		category, _ := db.AsString(t.Value(i, "category"))
		quantity, _ := db.AsInt64(t.Value(i, "quantity"))
		dist.Items = append(dist.Items, CategoryQuantity{Category: category, Quantity: quantity})
	}
	return dist, nil
}

func scalarInt(t *db.Table, column string) Value[int64] {
	if t.Empty() {
		return Value[int64]{Empty: true}
	}
	n, ok := db.AsInt64(t.Value(0, column))
	if !ok {
		return Value[int64]{Empty: true}
	}
	return Value[int64]{Val: n}
}
