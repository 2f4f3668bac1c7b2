package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// Actions prints the catalog of loggable eco-actions.
func (a *App) Actions(ctx context.Context) error {
	printlnFn("Available actions:")
	for _, spec := range models.Catalog {
		printlnFn(fmt.Sprintf("  %-18s %s %s (+%d points)", spec.Action, spec.Icon, spec.Label, spec.Points))
	}
	return nil
}

// LogAction records one eco-action for the logged-in user. When key is
// empty the catalog is shown and the user is prompted for one.
func (a *App) LogAction(ctx context.Context, key string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return common.ErrorUnauthorized
	}

	if key == "" {
		_ = a.Actions(ctx)
		entered, err := getSimpleText(a.reader, "Which action?", os.Stdout)
		if err != nil {
			return err
		}
		key = entered
	}

	activity, total, err := a.activities.Log(ctx, a.current.Email, models.ActionType(key))
	if err != nil {
		if errors.Is(err, common.ErrorUnknownAction) {
			printlnFn("Unknown action:", key, "— type 'actions' to see the catalog.")
		} else {
			a.log.Error(ctx, "error logging activity", "error", err)
			printlnFn("Could not log the action:", err.Error())
		}
		return err
	}

	a.current.EcoPoints = total
	printlnFn(fmt.Sprintf("%s %s logged: +%d points! ✅ Total: %d", activity.Icon, activity.Label, activity.Points, total))
	a.maybeCongratulate(total)
	return nil
}
