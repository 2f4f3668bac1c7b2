package users

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// InMemoryRepository is a map-backed Repository used for tests and as a
// swappable backing for callers that do not need persistence.
// Like the rest of the store it assumes a single logical actor.
type InMemoryRepository struct {
	records map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	email := models.NormalizeEmail(user.Email)
	if _, ok := r.records[email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	saved := *user
	saved.Email = email
	r.records[email] = saved

	result := saved
	return &result, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.records[models.NormalizeEmail(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := u
	return &result, nil
}

func (r *InMemoryRepository) Exists(ctx context.Context, email string) (bool, error) {
	_, ok := r.records[models.NormalizeEmail(email)]
	return ok, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, user *models.User) error {
	email := models.NormalizeEmail(user.Email)
	if _, ok := r.records[email]; !ok {
		return common.ErrorNotFound
	}

	saved := *user
	saved.Email = email
	r.records[email] = saved
	return nil
}
