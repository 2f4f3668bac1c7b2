package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/dbx"
	"github.com/dmitrijs2005/ecotracker/internal/models"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/activities"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/users"
	"github.com/google/uuid"
)

// ActivityService logs eco-actions. A logged action inserts an immutable
// history entry, trims the user's history to the retention bound, and awards
// the action's points — all inside one transaction, so a crash can never
// leave points without the matching history entry.
//
// It is bound to *sql.DB directly (rather than repository interfaces)
// because the append + trim + award sequence needs tx-scoped repositories.
type ActivityService struct {
	db *sql.DB
}

// NewActivityService constructs an ActivityService bound to the database.
func NewActivityService(db *sql.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Log records the action identified by key for the user with the given
// email. Returns the created activity and the user's updated lifetime
// points total.
//
// Errors: common.ErrorUnknownAction for a key outside the catalog,
// common.ErrorNotFound when the email has no account.
func (a *ActivityService) Log(ctx context.Context, email string, key models.ActionType) (*models.Activity, int, error) {
	spec, ok := models.LookupAction(key)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", common.ErrorUnknownAction, key)
	}

	activity := &models.Activity{
		ID:        uuid.NewString(),
		Action:    spec.Action,
		Label:     spec.Label,
		Icon:      spec.Icon,
		Points:    spec.Points,
		CreatedAt: time.Now(),
	}

	var total int
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := users.NewSQLiteRepository(tx)
		activityRepo := activities.NewSQLiteRepository(tx)

		user, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		if err := activityRepo.Append(ctx, user.Email, activity); err != nil {
			return err
		}

		user.EcoPoints += spec.Points
		if err := userRepo.Save(ctx, user); err != nil {
			return err
		}

		total = user.EcoPoints
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return activity, total, nil
}

// History returns the user's retained activity history, newest-first.
func (a *ActivityService) History(ctx context.Context, email string) ([]models.Activity, error) {
	return activities.NewSQLiteRepository(a.db).GetAll(ctx, email)
}
