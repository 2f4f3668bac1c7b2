package activities

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// Repository describes the per-user activity history. The stored
// representation is newest-first and bounded: after every append, only the
// most recent common.HistoryLimit entries per email survive.
type Repository interface {
	// Append stores the activity for the given email and evicts the oldest
	// entries beyond the retention bound. The per-user sequence is created
	// implicitly on first append. Entries are immutable once stored.
	Append(ctx context.Context, email string, activity *models.Activity) error

	// GetAll returns the retained history for the email, newest-first.
	// An email with no history yields an empty sequence, not an error.
	GetAll(ctx context.Context, email string) ([]models.Activity, error)
}
