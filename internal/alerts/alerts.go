// Package alerts derives actionable conditions from the current stock
// picture. Alerts are ephemeral: generated fresh on every read, never
// persisted.
package alerts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// TypeStockCritical tags alerts for positions at or below safety stock.
const TypeStockCritical = "STOCK_CRITICAL"

// maxAlerts caps the list so the dashboard stays readable.
const maxAlerts = 10

// Queryer runs one read statement. Satisfied by *db.Executor.
type Queryer interface {
	Query(ctx context.Context, stmt string, args ...any) (*db.Table, error)
}

type Generator struct {
	q   Queryer
	log *slog.Logger
}

func NewGenerator(q Queryer, log *slog.Logger) *Generator {
	return &Generator{q: q, log: log}
}

// CriticalStock emits one HIGH alert per inventory position at or below its
// safety stock, at most maxAlerts of them. Positions with no configured
// safety stock never alert (the SQL comparison with NULL excludes them).
// Low-tier positions deliberately produce no alert.
func (g *Generator) CriticalStock(ctx context.Context) ([]models.Alert, error) {
	t, err := g.q.Query(ctx, `
		SELECT s.product_name
		FROM inventory i
		JOIN skus s ON i.sku_id = s.sku_id
		WHERE i.quantity_available <= i.safety_stock
		ORDER BY i.quantity_available - i.safety_stock
		LIMIT 10`)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.Alert, 0, t.Len())
	for i := range t.Rows {
		if len(alerts) == maxAlerts {
			break
		}
		name, ok := db.AsString(t.Value(i, "product_name"))
		if !ok {
			continue
		}
		alerts = append(alerts, models.Alert{
			Type:     TypeStockCritical,
			Message:  fmt.Sprintf("Critical stock: %s", name),
			Priority: models.PriorityHigh,
		})
	}
	return alerts, nil
}
