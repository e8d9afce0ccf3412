package repo

import (
	"context"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/models"
)

// InMemorySKURepository is an in-memory implementation of SKURepository.
type InMemorySKURepository struct {
	skus   []models.SKU
	nextID int
}

func NewInMemorySKURepository() *InMemorySKURepository {
	return &InMemorySKURepository{nextID: 1}
}

func (r *InMemorySKURepository) Create(_ context.Context, s models.SKU) (models.SKU, error) {
	s.ID = r.nextID
	r.nextID++
	r.skus = append(r.skus, s)
	return s, nil
}

func (r *InMemorySKURepository) GetAll(_ context.Context) ([]models.SKU, error) {
	out := make([]models.SKU, len(r.skus))
	copy(out, r.skus)
	return out, nil
}

func (r *InMemorySKURepository) GetByID(_ context.Context, id int) (models.SKU, error) {
	for _, s := range r.skus {
		if s.ID == id {
			return s, nil
		}
	}
	return models.SKU{}, ErrSKUNotFound
}

func (r *InMemorySKURepository) GetByCode(_ context.Context, code string) (models.SKU, error) {
	for _, s := range r.skus {
		if s.Code == code {
			return s, nil
		}
	}
	return models.SKU{}, ErrSKUNotFound
}

func (r *InMemorySKURepository) Update(_ context.Context, s models.SKU) (models.SKU, error) {
	for i, existing := range r.skus {
		if existing.ID == s.ID {
			r.skus[i] = s
			return s, nil
		}
	}
	return models.SKU{}, ErrSKUNotFound
}

func (r *InMemorySKURepository) Delete(_ context.Context, id int) error {
	for i, s := range r.skus {
		if s.ID == id {
			r.skus = append(r.skus[:i], r.skus[i+1:]...)
			return nil
		}
	}
	return ErrSKUNotFound
}
