package session

import "context"

// Repository stores the single current-user slot. At most one session exists
// process-wide; the slot holds the case-folded email of the logged-in user.
type Repository interface {
	// Get returns the stored email, or common.ErrorNotFound when no session
	// is active.
	Get(ctx context.Context) (string, error)

	// Set records the email as current. Idempotent.
	Set(ctx context.Context, email string) error

	// Clear removes the session slot. Clearing an absent slot is a no-op.
	Clear(ctx context.Context) error
}
