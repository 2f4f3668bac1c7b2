package users

import (
	"context"

	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// Repository describes persistence operations for User records.
// Implementations must case-fold the email key, so lookups that differ only
// in letter case resolve to the same record.
type Repository interface {
	// Create persists a new user. Returns common.ErrorAlreadyExists when a
	// record with the same (case-folded) email is already stored.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user for the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Exists reports whether a record for the given email is stored.
	Exists(ctx context.Context, email string) (bool, error)

	// Save overwrites the whole record keyed by user.Email. This is the sole
	// update path; there are no partial-field updates. Returns
	// common.ErrorNotFound when no such record exists.
	Save(ctx context.Context, user *models.User) error
}
