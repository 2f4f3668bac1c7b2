// Package models defines the data records persisted by EcoTracker.
package models

import (
	"strings"
	"time"
)

// NormalizeEmail folds an email into its canonical stored form. Email is the
// sole identity key, so every lookup and write goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is an account record keyed by its case-folded email.
// The raw password is never stored; only the argon2id hash and its salt.
type User struct {
	// Name is the display name entered at signup.
	Name string

	// Email is the unique identifier, stored case-folded.
	Email string

	// PasswordHash is the argon2id hash of the password with Salt.
	PasswordHash []byte

	// Salt is the random per-user salt used for hashing.
	Salt []byte

	// EcoPoints is the lifetime points total. It keeps growing even after
	// old activities fall out of the retained history window.
	EcoPoints int

	// CreatedAt is the signup time in UTC.
	CreatedAt time.Time
}
