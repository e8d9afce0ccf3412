package kpi

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
)

type fakeQueryer struct {
	tables map[string]*db.Table // keyed by a substring of the statement
	err    error
}

func (f *fakeQueryer) Query(ctx context.Context, stmt string, args ...any) (*db.Table, error) {
	if f.err != nil {
		return nil, f.err
	}
	for k, t := range f.tables {
		if strings.Contains(stmt, k) {
			return t, nil
		}
	}
	return &db.Table{}, nil
}

func newService(q Queryer) *Service {
	return NewService(q, discardLogger())
}

func TestTotalOrders(t *testing.T) {
	q := &fakeQueryer{tables: map[string]*db.Table{
		"FROM orders": {Columns: []string{"count"}, Rows: [][]any{{int64(156)}}},
	}}
	v, err := newService(q).TotalOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Empty || v.Val != 156 {
		t.Errorf("expected 156, got %+v", v)
	}
}

func TestTotalStockValue(t *testing.T) {
	// One position: 50 available at unit cost 10.0.
	q := &fakeQueryer{tables: map[string]*db.Table{
		"total_value": {Columns: []string{"total_value"}, Rows: [][]any{{decimal.NewFromFloat(500.0)}}},
	}}
	v, err := newService(q).TotalStockValue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Empty || !v.Val.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected 500.0, got %+v", v)
	}
}

func TestTotalStockValueNullAggregateIsEmpty(t *testing.T) {
	q := &fakeQueryer{tables: map[string]*db.Table{
		"total_value": {Columns: []string{"total_value"}, Rows: [][]any{{nil}}},
	}}
	v, err := newService(q).TotalStockValue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Empty {
		t.Error("NULL aggregate must be reported as Empty, not substituted")
	}
}

func TestOTIFRate(t *testing.T) {
	// Three shipments: one on time, one late, one in flight. The query
	// excludes the in-flight row, so 1 of 2 counted.
	q := &fakeQueryer{tables: map[string]*db.Table{
		"otif_rate": {Columns: []string{"otif_rate"}, Rows: [][]any{{float64(50.0)}}},
	}}
	v, err := newService(q).OTIFRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Empty || v.Val != 50.0 {
		t.Errorf("expected 50%%, got %+v", v)
	}
}

func TestOTIFRateNoDeliveredShipmentsIsEmpty(t *testing.T) {
	q := &fakeQueryer{tables: map[string]*db.Table{
		"otif_rate": {Columns: []string{"otif_rate"}, Rows: [][]any{{nil}}},
	}}
	v, err := newService(q).OTIFRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Empty {
		t.Error("zero delivered shipments must be Empty")
	}
}

func TestOrdersTrendEmptyIsNotFabricated(t *testing.T) {
	q := &fakeQueryer{tables: map[string]*db.Table{
		"GROUP BY order_date": {Columns: []string{"date", "count"}},
	}}
	series, err := newService(q).OrdersTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !series.Empty {
		t.Fatal("empty orders table must yield an Empty series")
	}
	if len(series.Points) != 0 {
		t.Errorf("Empty series must carry no points, got %d", len(series.Points))
	}
}

func TestOrdersTrendErrorIsNotEmpty(t *testing.T) {
	q := &fakeQueryer{err: errors.New("connection refused")}
	_, err := newService(q).OrdersTrend(context.Background())
	if err == nil {
		t.Fatal("query failure must surface as an error, never as fallback data")
	}
}

func TestSampleOrdersTrend(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	series := SampleOrdersTrend(now)

	if len(series.Points) != 7 {
		t.Fatalf("expected exactly 7 points, got %d", len(series.Points))
	}
	wantCounts := []int64{10, 15, 8, 12, 20, 18, 14}
	for i, p := range series.Points {
		if p.Count != wantCounts[i] {
			t.Errorf("point %d count = %d, want %d", i, p.Count, wantCounts[i])
		}
		if i > 0 && !series.Points[i-1].Date.Before(p.Date) {
			t.Errorf("points must be in chronological order: %v !< %v", series.Points[i-1].Date, p.Date)
		}
	}
	if last := series.Points[6].Date; !last.Equal(now.AddDate(0, 0, -1)) {
		t.Errorf("series should end yesterday, got %v", last)
	}
}

func TestStockDistribution(t *testing.T) {
	q := &fakeQueryer{tables: map[string]*db.Table{
		"GROUP BY s.category": {
			Columns: []string{"category", "quantity"},
			Rows:    [][]any{{"Electronics", int64(150)}, {"Textile", int64(200)}},
		},
	}}
	dist, err := newService(q).StockDistribution(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist.Empty || len(dist.Items) != 2 {
		t.Fatalf("expected 2 categories, got %+v", dist)
	}
	if dist.Items[0].Category != "Electronics" || dist.Items[0].Quantity != 150 {
		t.Errorf("unexpected first item: %+v", dist.Items[0])
	}
}
