package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

type PostgresWarehouseRepository struct {
	exec Execer
}

func NewPostgresWarehouseRepository(exec Execer) *PostgresWarehouseRepository {
	return &PostgresWarehouseRepository{exec: exec}
}

func (r *PostgresWarehouseRepository) Create(ctx context.Context, w models.Warehouse) (models.Warehouse, error) {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO warehouses (warehouse_name, location, capacity_m3)
		VALUES ($1, $2, $3)`, w.Name, w.Location, w.CapacityM3)
	if err != nil {
		return models.Warehouse{}, err
	}
	id, err := lastInsertedID(ctx, r.exec, "warehouses", "warehouse_id")
	if err != nil {
		return models.Warehouse{}, err
	}
	w.ID = id
	return w, nil
}

func (r *PostgresWarehouseRepository) GetAll(ctx context.Context) ([]models.Warehouse, error) {
	t, err := r.exec.Query(ctx, `
		SELECT warehouse_id, warehouse_name, location, capacity_m3
		FROM warehouses
		ORDER BY warehouse_id`)
	if err != nil {
		return nil, err
	}
	warehouses := make([]models.Warehouse, 0, t.Len())
	for i := range t.Rows {
		warehouses = append(warehouses, warehouseFromRow(t, i))
	}
	return warehouses, nil
}

func (r *PostgresWarehouseRepository) GetByID(ctx context.Context, id int) (models.Warehouse, error) {
	t, err := r.exec.Query(ctx, `
		SELECT warehouse_id, warehouse_name, location, capacity_m3
		FROM warehouses
		WHERE warehouse_id = $1`, id)
	if err != nil {
		return models.Warehouse{}, err
	}
	if t.Empty() {
		return models.Warehouse{}, ErrWarehouseNotFound
	}
	return warehouseFromRow(t, 0), nil
}

func (r *PostgresWarehouseRepository) Update(ctx context.Context, w models.Warehouse) (models.Warehouse, error) {
	n, err := r.exec.Exec(ctx, `
		UPDATE warehouses
		SET warehouse_name = $1, location = $2, capacity_m3 = $3
		WHERE warehouse_id = $4`, w.Name, w.Location, w.CapacityM3, w.ID)
	if err != nil {
		return models.Warehouse{}, err
	}
	if n == 0 {
		return models.Warehouse{}, ErrWarehouseNotFound
	}
	return w, nil
}

func (r *PostgresWarehouseRepository) Delete(ctx context.Context, id int) error {
	n, err := r.exec.Exec(ctx, `DELETE FROM warehouses WHERE warehouse_id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWarehouseNotFound
	}
	return nil
}

func warehouseFromRow(t *db.Table, i int) models.Warehouse {
	var w models.Warehouse
	if v, ok := db.AsInt64(t.Value(i, "warehouse_id")); ok {
		w.ID = int(v)
	}
	w.Name, _ = db.AsString(t.Value(i, "warehouse_name"))
	w.Location, _ = db.AsString(t.Value(i, "location"))
	w.CapacityM3, _ = db.AsFloat64(t.Value(i, "capacity_m3"))
	return w
}
