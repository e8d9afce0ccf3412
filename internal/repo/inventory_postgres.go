package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/stock"
)

type PostgresInventoryRepository struct {
	exec Execer
}

func NewPostgresInventoryRepository(exec Execer) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{exec: exec}
}

const inventoryColumns = `inventory_id, sku_id, warehouse_id, quantity_available, quantity_reserved, safety_stock, reorder_point`

func (r *PostgresInventoryRepository) Create(ctx context.Context, inv models.Inventory) (models.Inventory, error) {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO inventory (sku_id, warehouse_id, quantity_available, quantity_reserved, safety_stock, reorder_point)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.SKUID, inv.WarehouseID, inv.QuantityAvailable, inv.QuantityReserved, inv.SafetyStock, inv.ReorderPoint)
	if err != nil {
		return models.Inventory{}, err
	}
	id, err := lastInsertedID(ctx, r.exec, "inventory", "inventory_id")
	if err != nil {
		return models.Inventory{}, err
	}
	inv.ID = id
	return inv, nil
}

func (r *PostgresInventoryRepository) GetAll(ctx context.Context) ([]models.Inventory, error) {
	t, err := r.exec.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory ORDER BY inventory_id`)
	if err != nil {
		return nil, err
	}
	positions := make([]models.Inventory, 0, t.Len())
	for i := range t.Rows {
		positions = append(positions, inventoryFromRow(t, i))
	}
	return positions, nil
}

func (r *PostgresInventoryRepository) GetByID(ctx context.Context, id int) (models.Inventory, error) {
	t, err := r.exec.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE inventory_id = $1`, id)
	if err != nil {
		return models.Inventory{}, err
	}
	if t.Empty() {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inventoryFromRow(t, 0), nil
}

func (r *PostgresInventoryRepository) Update(ctx context.Context, inv models.Inventory) (models.Inventory, error) {
	n, err := r.exec.Exec(ctx, `
		UPDATE inventory
		SET quantity_available = $1, quantity_reserved = $2, safety_stock = $3, reorder_point = $4
		WHERE inventory_id = $5`,
		inv.QuantityAvailable, inv.QuantityReserved, inv.SafetyStock, inv.ReorderPoint, inv.ID)
	if err != nil {
		return models.Inventory{}, err
	}
	if n == 0 {
		return models.Inventory{}, ErrInventoryNotFound
	}
	return inv, nil
}

func (r *PostgresInventoryRepository) Delete(ctx context.Context, id int) error {
	n, err := r.exec.Exec(ctx, `DELETE FROM inventory WHERE inventory_id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

func (r *PostgresInventoryRepository) StockView(ctx context.Context, f StockFilter) ([]models.StockRow, error) {
	conditions, args := stockFilterConditions(f)
	query := `
		SELECT
			i.inventory_id,
			w.warehouse_name,
			s.sku_code,
			s.product_name,
			s.category,
			i.quantity_available,
			i.quantity_reserved,
			i.safety_stock,
			i.reorder_point,
			s.unit_cost,
			(i.quantity_available * s.unit_cost) AS stock_value
		FROM inventory i
		JOIN warehouses w ON i.warehouse_id = w.warehouse_id
		JOIN skus s ON i.sku_id = s.sku_id
		WHERE 1=1` + conditions + `
		ORDER BY s.product_name`

	t, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]models.StockRow, 0, t.Len())
	for i := range t.Rows {
		row := stockRowFromRow(t, i)
		row.Health = string(stock.ClassifyNullable(row.QuantityAvailable, row.SafetyStock, row.ReorderPoint))
		if f.Health != "" && row.Health != string(f.Health) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *PostgresInventoryRepository) ApplyMovement(ctx context.Context, m models.Movement) error {
	if m.Quantity <= 0 {
		return fmt.Errorf("movement quantity must be positive, got %d", m.Quantity)
	}

	adjust := db.Statement{RequireRows: true}
	switch m.Type {
	case models.MovementIn:
		adjust.SQL = `
			UPDATE inventory
			SET quantity_available = quantity_available + $1
			WHERE sku_id = $2 AND warehouse_id = $3`
		adjust.Args = []any{m.Quantity, m.SKUID, m.WarehouseID}
	case models.MovementOut:
		adjust.SQL = `
			UPDATE inventory
			SET quantity_available = quantity_available - $1
			WHERE sku_id = $2 AND warehouse_id = $3 AND quantity_available >= $1`
		adjust.Args = []any{m.Quantity, m.SKUID, m.WarehouseID}
	default:
		return fmt.Errorf("unknown movement type %q", m.Type)
	}

	err := r.exec.ExecBatch(ctx,
		db.Statement{
			SQL: `
				INSERT INTO stock_movements (sku_id, warehouse_id, movement_type, quantity, reason)
				VALUES ($1, $2, $3, $4, $5)`,
			Args: []any{m.SKUID, m.WarehouseID, string(m.Type), m.Quantity, m.Reason},
		},
		adjust,
	)
	if errors.Is(err, db.ErrNoRowsAffected) {
		if m.Type == models.MovementOut {
			return ErrInsufficientStock
		}
		return ErrInventoryNotFound
	}
	return err
}

func inventoryFromRow(t *db.Table, i int) models.Inventory {
	var inv models.Inventory
	if v, ok := db.AsInt64(t.Value(i, "inventory_id")); ok {
		inv.ID = int(v)
	}
	if v, ok := db.AsInt64(t.Value(i, "sku_id")); ok {
		inv.SKUID = int(v)
	}
	if v, ok := db.AsInt64(t.Value(i, "warehouse_id")); ok {
		inv.WarehouseID = int(v)
	}
	if v, ok := db.AsInt64(t.Value(i, "quantity_available")); ok {
		inv.QuantityAvailable = int(v)
	}
	if v, ok := db.AsInt64(t.Value(i, "quantity_reserved")); ok {
		inv.QuantityReserved = int(v)
	}
	inv.SafetyStock = nullableInt(t.Value(i, "safety_stock"))
	inv.ReorderPoint = nullableInt(t.Value(i, "reorder_point"))
	return inv
}

func stockRowFromRow(t *db.Table, i int) models.StockRow {
	var row models.StockRow
	if v, ok := db.AsInt64(t.Value(i, "inventory_id")); ok {
		row.InventoryID = int(v)
	}
	row.WarehouseName, _ = db.AsString(t.Value(i, "warehouse_name"))
	row.SKUCode, _ = db.AsString(t.Value(i, "sku_code"))
	row.ProductName, _ = db.AsString(t.Value(i, "product_name"))
	row.Category, _ = db.AsString(t.Value(i, "category"))
	if v, ok := db.AsInt64(t.Value(i, "quantity_available")); ok {
		row.QuantityAvailable = int(v)
	}
	if v, ok := db.AsInt64(t.Value(i, "quantity_reserved")); ok {
		row.QuantityReserved = int(v)
	}
	row.SafetyStock = nullableInt(t.Value(i, "safety_stock"))
	row.ReorderPoint = nullableInt(t.Value(i, "reorder_point"))
	row.UnitCost, _ = db.AsDecimal(t.Value(i, "unit_cost"))
	row.StockValue, _ = db.AsDecimal(t.Value(i, "stock_value"))
	return row
}

func nullableInt(v any) *int {
	if n, ok := db.AsInt64(v); ok {
		i := int(n)
		return &i
	}
	return nil
}
