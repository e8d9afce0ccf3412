package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

type PostgresOrderRepository struct {
	exec Execer
}

func NewPostgresOrderRepository(exec Execer) *PostgresOrderRepository {
	return &PostgresOrderRepository{exec: exec}
}

const orderColumns = `order_id, order_number, customer_id, order_date, status, priority, total_value`

func (r *PostgresOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO orders (order_number, customer_id, order_date, status, priority, total_value)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.Number, o.CustomerID, o.OrderDate, string(o.Status), o.Priority, o.TotalValue)
	if err != nil {
		return models.Order{}, err
	}
	id, err := lastInsertedID(ctx, r.exec, "orders", "order_id")
	if err != nil {
		return models.Order{}, err
	}
	o.ID = id
	return o, nil
}

func (r *PostgresOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	t, err := r.exec.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC, order_id DESC`)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, t.Len())
	for i := range t.Rows {
		orders = append(orders, orderFromRow(t, i))
	}
	return orders, nil
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int) (models.Order, error) {
	t, err := r.exec.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return models.Order{}, err
	}
	if t.Empty() {
		return models.Order{}, ErrOrderNotFound
	}
	return orderFromRow(t, 0), nil
}

func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error {
	n, err := r.exec.Exec(ctx, `UPDATE orders SET status = $1 WHERE order_id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) Delete(ctx context.Context, id int) error {
	n, err := r.exec.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func orderFromRow(t *db.Table, i int) models.Order {
	var o models.Order
	if v, ok := db.AsInt64(t.Value(i, "order_id")); ok {
		o.ID = int(v)
	}
	o.Number, _ = db.AsString(t.Value(i, "order_number"))
	if v, ok := db.AsInt64(t.Value(i, "customer_id")); ok {
		o.CustomerID = int(v)
	}
	o.OrderDate, _ = db.AsTime(t.Value(i, "order_date"))
	if s, ok := db.AsString(t.Value(i, "status")); ok {
		o.Status = models.OrderStatus(s)
	}
	o.Priority, _ = db.AsString(t.Value(i, "priority"))
	o.TotalValue, _ = db.AsDecimal(t.Value(i, "total_value"))
	return o
}
