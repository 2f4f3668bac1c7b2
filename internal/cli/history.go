package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/services"
)

// History prints the retained activity history, newest-first.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return common.ErrorUnauthorized
	}

	history, err := a.activities.History(ctx, a.current.Email)
	if err != nil {
		a.log.Error(ctx, "error loading history", "error", err)
		printlnFn("Could not load history:", err.Error())
		return err
	}

	if len(history) == 0 {
		printlnFn("No activities yet. Type 'log' to record your first eco-action!")
		return nil
	}

	printlnFn(fmt.Sprintf("Last %d activities:", len(history)))
	for _, item := range history {
		printlnFn(fmt.Sprintf("  %s  %s %-18s +%d", item.CreatedAt.Local().Format("2006-01-02 15:04"),
			item.Icon, item.Label, item.Points))
	}
	return nil
}

// Stats prints the aggregate view of the retained history.
func (a *App) Stats(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return common.ErrorUnauthorized
	}

	history, err := a.activities.History(ctx, a.current.Email)
	if err != nil {
		a.log.Error(ctx, "error loading history", "error", err)
		printlnFn("Could not load history:", err.Error())
		return err
	}

	stats := services.ComputeStats(history, time.Now())

	printlnFn(fmt.Sprintf("Total actions:    %d", stats.Total))
	printlnFn(fmt.Sprintf("Today:            %d", stats.Today))
	printlnFn(fmt.Sprintf("Last 7 days:      %d", stats.ThisWeek))
	printlnFn(fmt.Sprintf("Favorite action:  %s", stats.Favorite))
	return nil
}

// Points prints the lifetime EcoPoints total.
func (a *App) Points(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return common.ErrorUnauthorized
	}

	user, err := a.users.GetByEmail(ctx, a.current.Email)
	if err != nil {
		a.log.Error(ctx, "error loading user", "error", err)
		return err
	}

	a.current = user
	printlnFn(fmt.Sprintf("%s, you have %d EcoPoints. 🌍", user.Name, user.EcoPoints))
	return nil
}
