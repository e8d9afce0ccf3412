package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// InMemoryCustomerRepository is an in-memory implementation of CustomerRepository.
type InMemoryCustomerRepository struct {
	customers []models.Customer
	nextID    int
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{nextID: 1}
}

func (r *InMemoryCustomerRepository) Create(_ context.Context, c models.Customer) (models.Customer, error) {
	c.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *InMemoryCustomerRepository) GetAll(_ context.Context) ([]models.Customer, error) {
	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *InMemoryCustomerRepository) GetByID(_ context.Context, id int) (models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Update(_ context.Context, c models.Customer) (models.Customer, error) {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			r.customers[i] = c
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Delete(_ context.Context, id int) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}
