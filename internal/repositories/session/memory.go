package session

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// InMemoryRepository is a map-free single-slot Repository for tests.
type InMemoryRepository struct {
	email string
	set   bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Get(ctx context.Context) (string, error) {
	if !r.set {
		return "", common.ErrorNotFound
	}
	return r.email, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, email string) error {
	r.email = models.NormalizeEmail(email)
	r.set = true
	return nil
}

func (r *InMemoryRepository) Clear(ctx context.Context) error {
	r.email = ""
	r.set = false
	return nil
}
