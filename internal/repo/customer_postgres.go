package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	Create(ctx context.Context, c models.Customer) (models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id int) (models.Customer, error)
	Update(ctx context.Context, c models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id int) error
}

type PostgresCustomerRepository struct {
	exec Execer
}

func NewPostgresCustomerRepository(exec Execer) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{exec: exec}
}

const customerColumns = `customer_id, customer_name, contact_person, email, phone, address, city, country, is_active`

func (r *PostgresCustomerRepository) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO customers (customer_name, contact_person, email, phone, address, city, country, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.Name, c.ContactPerson, c.Email, c.Phone, c.Address, c.City, c.Country, c.IsActive)
	if err != nil {
		return models.Customer{}, err
	}
	id, err := lastInsertedID(ctx, r.exec, "customers", "customer_id")
	if err != nil {
		return models.Customer{}, err
	}
	c.ID = id
	return c, nil
}

func (r *PostgresCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	t, err := r.exec.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY customer_id`)
	if err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, t.Len())
	for i := range t.Rows {
		customers = append(customers, customerFromRow(t, i))
	}
	return customers, nil
}

func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id int) (models.Customer, error) {
	t, err := r.exec.Query(ctx, `SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return models.Customer{}, err
	}
	if t.Empty() {
		return models.Customer{}, ErrCustomerNotFound
	}
	return customerFromRow(t, 0), nil
}

func (r *PostgresCustomerRepository) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	n, err := r.exec.Exec(ctx, `
		UPDATE customers
		SET customer_name = $1, contact_person = $2, email = $3, phone = $4,
		    address = $5, city = $6, country = $7, is_active = $8
		WHERE customer_id = $9`,
		c.Name, c.ContactPerson, c.Email, c.Phone, c.Address, c.City, c.Country, c.IsActive, c.ID)
	if err != nil {
		return models.Customer{}, err
	}
	if n == 0 {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (r *PostgresCustomerRepository) Delete(ctx context.Context, id int) error {
	n, err := r.exec.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func customerFromRow(t *db.Table, i int) models.Customer {
	var c models.Customer
	if v, ok := db.AsInt64(t.Value(i, "customer_id")); ok {
		c.ID = int(v)
	}
	c.Name, _ = db.AsString(t.Value(i, "customer_name"))
	c.ContactPerson, _ = db.AsString(t.Value(i, "contact_person"))
	c.Email, _ = db.AsString(t.Value(i, "email"))
	c.Phone, _ = db.AsString(t.Value(i, "phone"))
	c.Address, _ = db.AsString(t.Value(i, "address"))
	c.City, _ = db.AsString(t.Value(i, "city"))
	c.Country, _ = db.AsString(t.Value(i, "country"))
	c.IsActive, _ = db.AsBool(t.Value(i, "is_active"))
	return c
}
