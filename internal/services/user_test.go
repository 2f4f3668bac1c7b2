package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() *UserService {
	return NewUserService(users.NewInMemoryRepository())
}

func TestRegister_NewAccount(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	user, err := s.Register(ctx, "Ana", "Ana@X.com", []byte("secret1"))
	require.NoError(t, err)

	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "ana@x.com", user.Email)
	assert.Equal(t, 0, user.EcoPoints)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEmpty(t, user.Salt)
	assert.NotContains(t, string(user.PasswordHash), "secret1")
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegister_DuplicateEmail_CaseFold(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	_, err := s.Register(ctx, "Ana", "ana@x.com", []byte("secret1"))
	require.NoError(t, err)

	_, err = s.Register(ctx, "Other", "ANA@X.COM", []byte("secret2"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "ana@x.com", "secret1"},
		{"empty email", "Ana", "", "secret1"},
		{"empty password", "Ana", "ana@x.com", ""},
		{"no at sign", "Ana", "anax.com", "secret1"},
		{"no domain dot", "Ana", "ana@xcom", "secret1"},
		{"whitespace in email", "Ana", "a na@x.com", "secret1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(ctx, tc.userName, tc.email, []byte(tc.password))
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	_, err := s.Register(ctx, "Ana", "ana@x.com", []byte("secret1"))
	require.NoError(t, err)

	user, err := s.Authenticate(ctx, "ana@x.com", []byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", user.Email)

	// wrong password
	_, err = s.Authenticate(ctx, "ana@x.com", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	// unknown account looks identical to a wrong password
	_, err = s.Authenticate(ctx, "ghost@x.com", []byte("secret1"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_CaseFoldedEmail(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	_, err := s.Register(ctx, "Ana", "ana@x.com", []byte("secret1"))
	require.NoError(t, err)

	user, err := s.Authenticate(ctx, "ANA@x.Com", []byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", user.Email)
}

func TestAwardPoints(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	_, err := s.Register(ctx, "Ana", "ana@x.com", []byte("secret1"))
	require.NoError(t, err)

	user, err := s.AwardPoints(ctx, "ana@x.com", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, user.EcoPoints)

	user, err = s.AwardPoints(ctx, "ana@x.com", 10)
	require.NoError(t, err)
	assert.Equal(t, 25, user.EcoPoints)

	got, err := s.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, 25, got.EcoPoints)
}

func TestAwardPoints_MissingUser(t *testing.T) {
	s := newUserService()

	_, err := s.AwardPoints(context.Background(), "ghost@x.com", 10)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
