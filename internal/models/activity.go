package models

import "time"

// Activity is a single logged eco-action event. Immutable once created.
type Activity struct {
	// ID is a globally unique identifier for the event.
	ID string

	// Action is the catalog key of the performed action.
	Action ActionType

	// Label is the display name paired with Action.
	Label string

	// Icon is the display icon paired with Action.
	Icon string

	// Points is the fixed point value of the action at logging time.
	Points int

	// CreatedAt is the moment the action was logged.
	CreatedAt time.Time
}
