package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

type PostgresSKURepository struct {
	exec Execer
}

func NewPostgresSKURepository(exec Execer) *PostgresSKURepository {
	return &PostgresSKURepository{exec: exec}
}

const skuColumns = `sku_id, sku_code, product_name, category, unit_cost`

func (r *PostgresSKURepository) Create(ctx context.Context, s models.SKU) (models.SKU, error) {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO skus (sku_code, product_name, category, unit_cost)
		VALUES ($1, $2, $3, $4)`, s.Code, s.Name, s.Category, s.UnitCost)
	if err != nil {
		return models.SKU{}, err
	}
	id, err := lastInsertedID(ctx, r.exec, "skus", "sku_id")
	if err != nil {
		return models.SKU{}, err
	}
	s.ID = id
	return s, nil
}

func (r *PostgresSKURepository) GetAll(ctx context.Context) ([]models.SKU, error) {
	t, err := r.exec.Query(ctx, `SELECT `+skuColumns+` FROM skus ORDER BY sku_id`)
	if err != nil {
		return nil, err
	}
	skus := make([]models.SKU, 0, t.Len())
	for i := range t.Rows {
		skus = append(skus, skuFromRow(t, i))
	}
	return skus, nil
}

func (r *PostgresSKURepository) GetByID(ctx context.Context, id int) (models.SKU, error) {
	t, err := r.exec.Query(ctx, `SELECT `+skuColumns+` FROM skus WHERE sku_id = $1`, id)
	if err != nil {
		return models.SKU{}, err
	}
	if t.Empty() {
		return models.SKU{}, ErrSKUNotFound
	}
	return skuFromRow(t, 0), nil
}

func (r *PostgresSKURepository) GetByCode(ctx context.Context, code string) (models.SKU, error) {
	t, err := r.exec.Query(ctx, `SELECT `+skuColumns+` FROM skus WHERE sku_code = $1`, code)
	if err != nil {
		return models.SKU{}, err
	}
	if t.Empty() {
		return models.SKU{}, ErrSKUNotFound
	}
	return skuFromRow(t, 0), nil
}

func (r *PostgresSKURepository) Update(ctx context.Context, s models.SKU) (models.SKU, error) {
	n, err := r.exec.Exec(ctx, `
		UPDATE skus
		SET sku_code = $1, product_name = $2, category = $3, unit_cost = $4
		WHERE sku_id = $5`, s.Code, s.Name, s.Category, s.UnitCost, s.ID)
	if err != nil {
		return models.SKU{}, err
	}
	if n == 0 {
		return models.SKU{}, ErrSKUNotFound
	}
	return s, nil
}

func (r *PostgresSKURepository) Delete(ctx context.Context, id int) error {
	n, err := r.exec.Exec(ctx, `DELETE FROM skus WHERE sku_id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSKUNotFound
	}
	return nil
}

func skuFromRow(t *db.Table, i int) models.SKU {
	var s models.SKU
	if v, ok := db.AsInt64(t.Value(i, "sku_id")); ok {
		s.ID = int(v)
	}
	s.Code, _ = db.AsString(t.Value(i, "sku_code"))
	s.Name, _ = db.AsString(t.Value(i, "product_name"))
	s.Category, _ = db.AsString(t.Value(i, "category"))
	s.UnitCost, _ = db.AsDecimal(t.Value(i, "unit_cost"))
	return s
}
