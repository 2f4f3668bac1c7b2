// Package services contains the application services of EcoTracker: account
// management, the current-session slot, activity logging, and statistics.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/cryptox"
	"github.com/dmitrijs2005/ecotracker/internal/models"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/users"
)

// emailPattern is deliberately loose: one @, no whitespace, a dot in the
// domain. Real validation happens when the address is used, which this
// system never does.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService implements account registration, credential verification and
// point awards on top of a users.Repository.
//
// Contract:
//   - Register: validate input, case-fold email, persist with a fresh salt
//     and argon2id hash, zero starting points.
//   - Authenticate: constant-time credential check; misses and mismatches
//     are indistinguishable to the caller.
//   - AwardPoints: read-modify-write of the lifetime points total.
//
// The raw password is never stored and never returned.
type UserService struct {
	repo users.Repository
}

// NewUserService constructs a UserService bound to the given repository.
func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) validateSignup(name, email string, password []byte) error {
	if name == "" || email == "" || len(password) == 0 {
		return fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: malformed email", common.ErrorValidation)
	}
	return nil
}

// Register creates a new account with zero EcoPoints. The email is trimmed
// and case-folded before the uniqueness check, so addresses differing only
// in letter case collide with common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)

	if err := s.validateSignup(name, email, password); err != nil {
		return nil, err
	}

	salt := cryptox.GenerateSalt()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         salt,
		EcoPoints:    0,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Authenticate returns the user iff the email resolves to an account and the
// password matches its stored hash. Both failure modes map to
// common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, email string, password []byte) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	if !cryptox.VerifyPassword(user.PasswordHash, password, user.Salt) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByEmail proxies the repository lookup.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Exists reports whether an account with the given email is registered.
func (s *UserService) Exists(ctx context.Context, email string) (bool, error) {
	return s.repo.Exists(ctx, email)
}

// Save overwrites the stored record for user.Email.
func (s *UserService) Save(ctx context.Context, user *models.User) error {
	return s.repo.Save(ctx, user)
}

// AwardPoints adds points to the user's lifetime total and returns the
// updated record. Not atomic against a second caller; the store assumes a
// single logical actor.
func (s *UserService) AwardPoints(ctx context.Context, email string, points int) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.EcoPoints += points
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
