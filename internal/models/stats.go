package models

// NoFavorite is the Favorite placeholder returned when no activities exist.
const NoFavorite = "None yet"

// Stats is the aggregate view over a user's retained activity history.
// Counts cover at most the retained window (see common.HistoryLimit), so
// Total undercounts lifetime activity beyond that bound.
type Stats struct {
	// Total is the number of retained activities.
	Total int

	// Today is the number of activities logged since the start of the
	// current calendar day (local time).
	Today int

	// ThisWeek is the number of activities in a rolling window starting
	// seven days before the start of today. Not a calendar week.
	ThisWeek int

	// Favorite is the most frequently logged action label, or NoFavorite
	// when the history is empty.
	Favorite string
}
