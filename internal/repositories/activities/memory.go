package activities

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// InMemoryRepository keeps per-user histories in a map, newest-first.
// Used for tests and as a swappable non-persistent backing.
type InMemoryRepository struct {
	histories map[string][]models.Activity
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{histories: make(map[string][]models.Activity)}
}

func (r *InMemoryRepository) Append(ctx context.Context, email string, a *models.Activity) error {
	email = models.NormalizeEmail(email)

	history := append([]models.Activity{*a}, r.histories[email]...)
	if len(history) > common.HistoryLimit {
		history = history[:common.HistoryLimit]
	}
	r.histories[email] = history
	return nil
}

func (r *InMemoryRepository) GetAll(ctx context.Context, email string) ([]models.Activity, error) {
	history := r.histories[models.NormalizeEmail(email)]
	result := make([]models.Activity, len(history))
	copy(result, history)
	return result, nil
}
