package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_CreateGetSave(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, testUser("Ana@X.com"))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", created.Email)

	_, err = r.Create(ctx, testUser("ana@x.com"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	created.EcoPoints = 10
	require.NoError(t, r.Save(ctx, created))

	got, err := r.GetByEmail(ctx, "ANA@x.com")
	require.NoError(t, err)
	assert.Equal(t, 10, got.EcoPoints)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, testUser("ana@x.com"))
	require.NoError(t, err)

	got, err := r.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	got.EcoPoints = 999

	again, err := r.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, 0, again.EcoPoints, "mutating a returned record must not affect the store")
}

func TestInMemory_SaveMissing(t *testing.T) {
	r := NewInMemoryRepository()
	err := r.Save(context.Background(), testUser("ghost@x.com"))
	require.ErrorIs(t, err, common.ErrorNotFound)
}
