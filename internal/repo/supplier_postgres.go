package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	Create(ctx context.Context, s models.Supplier) (models.Supplier, error)
	GetAll(ctx context.Context) ([]models.Supplier, error)
	GetByID(ctx context.Context, id int) (models.Supplier, error)
	Update(ctx context.Context, s models.Supplier) (models.Supplier, error)
	Delete(ctx context.Context, id int) error
}

type PostgresSupplierRepository struct {
	exec Execer
}

func NewPostgresSupplierRepository(exec Execer) *PostgresSupplierRepository {
	return &PostgresSupplierRepository{exec: exec}
}

const supplierColumns = `supplier_id, supplier_name, contact_person, email, phone, address, country, is_active`

func (r *PostgresSupplierRepository) Create(ctx context.Context, s models.Supplier) (models.Supplier, error) {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO suppliers (supplier_name, contact_person, email, phone, address, country, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Country, s.IsActive)
	if err != nil {
		return models.Supplier{}, err
	}
	id, err := lastInsertedID(ctx, r.exec, "suppliers", "supplier_id")
	if err != nil {
		return models.Supplier{}, err
	}
	s.ID = id
	return s, nil
}

func (r *PostgresSupplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	t, err := r.exec.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY supplier_id`)
	if err != nil {
		return nil, err
	}
	suppliers := make([]models.Supplier, 0, t.Len())
	for i := range t.Rows {
		suppliers = append(suppliers, supplierFromRow(t, i))
	}
	return suppliers, nil
}

func (r *PostgresSupplierRepository) GetByID(ctx context.Context, id int) (models.Supplier, error) {
	t, err := r.exec.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE supplier_id = $1`, id)
	if err != nil {
		return models.Supplier{}, err
	}
	if t.Empty() {
		return models.Supplier{}, ErrSupplierNotFound
	}
	return supplierFromRow(t, 0), nil
}

func (r *PostgresSupplierRepository) Update(ctx context.Context, s models.Supplier) (models.Supplier, error) {
	n, err := r.exec.Exec(ctx, `
		UPDATE suppliers
		SET supplier_name = $1, contact_person = $2, email = $3, phone = $4,
		    address = $5, country = $6, is_active = $7
		WHERE supplier_id = $8`,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Country, s.IsActive, s.ID)
	if err != nil {
		return models.Supplier{}, err
	}
	if n == 0 {
		return models.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (r *PostgresSupplierRepository) Delete(ctx context.Context, id int) error {
	n, err := r.exec.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func supplierFromRow(t *db.Table, i int) models.Supplier {
	var s models.Supplier
	if v, ok := db.AsInt64(t.Value(i, "supplier_id")); ok {
		s.ID = int(v)
	}
	s.Name, _ = db.AsString(t.Value(i, "supplier_name"))
	s.ContactPerson, _ = db.AsString(t.Value(i, "contact_person"))
	s.Email, _ = db.AsString(t.Value(i, "email"))
	s.Phone, _ = db.AsString(t.Value(i, "phone"))
	s.Address, _ = db.AsString(t.Value(i, "address"))
	s.Country, _ = db.AsString(t.Value(i, "country"))
	s.IsActive, _ = db.AsBool(t.Value(i, "is_active"))
	return s
}
