package services

import (
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// ComputeStats derives the aggregate view from a history snapshot. It is a
// pure function: nothing is cached or stored, every call recomputes from the
// slice it is handed.
//
// Window semantics, anchored to now's local calendar day:
//   - Today counts entries at or after the start of today.
//   - ThisWeek counts entries in a rolling window starting seven days before
//     the start of today (not a calendar week).
//
// Favorite is the most frequent label; on a tie the label encountered first
// while walking the snapshot wins. Because the snapshot is newest-first,
// the tie-break is stable across calls but intentionally not alphabetical.
func ComputeStats(history []models.Activity, now time.Time) models.Stats {
	stats := models.Stats{
		Total:    len(history),
		Favorite: models.NoFavorite,
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfToday.AddDate(0, 0, -7)

	counts := make(map[string]int, len(history))
	best := 0

	for _, a := range history {
		ts := a.CreatedAt.In(now.Location())
		if !ts.Before(startOfToday) {
			stats.Today++
		}
		if !ts.Before(startOfWeek) {
			stats.ThisWeek++
		}

		counts[a.Label]++
		if counts[a.Label] > best {
			best = counts[a.Label]
			stats.Favorite = a.Label
		}
	}

	return stats
}
