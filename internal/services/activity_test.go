package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/models"
	"github.com/dmitrijs2005/ecotracker/internal/repositories/users"
	"github.com/dmitrijs2005/ecotracker/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func usersRepoOn(db *sql.DB) users.Repository {
	return users.NewSQLiteRepository(db)
}

func setupActivityFixture(t *testing.T) (*sql.DB, *ActivityService, *UserService) {
	t.Helper()

	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, NewActivityService(db), NewUserService(usersRepoOn(db))
}

func registerAna(t *testing.T, usersSvc *UserService) {
	t.Helper()
	_, err := usersSvc.Register(context.Background(), "Ana", "ana@x.com", []byte("secret1"))
	require.NoError(t, err)
}

func TestLog_RecordsActivityAndAwardsPoints(t *testing.T) {
	_, activitySvc, usersSvc := setupActivityFixture(t)
	ctx := context.Background()
	registerAna(t, usersSvc)

	activity, total, err := activitySvc.Log(ctx, "ana@x.com", models.ActionRecycle)
	require.NoError(t, err)

	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, models.ActionRecycle, activity.Action)
	assert.Equal(t, "Recycle", activity.Label)
	assert.Equal(t, "♻️", activity.Icon)
	assert.Equal(t, 10, activity.Points)
	assert.Equal(t, 10, total)

	history, err := activitySvc.History(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, activity.ID, history[0].ID)

	user, err := usersSvc.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, 10, user.EcoPoints)
}

func TestLog_AccumulatesPoints(t *testing.T) {
	_, activitySvc, usersSvc := setupActivityFixture(t)
	ctx := context.Background()
	registerAna(t, usersSvc)

	_, _, err := activitySvc.Log(ctx, "ana@x.com", models.ActionBike)
	require.NoError(t, err)

	_, total, err := activitySvc.Log(ctx, "ana@x.com", models.ActionPlantTree)
	require.NoError(t, err)
	assert.Equal(t, 15+25, total)
}

func TestLog_UnknownAction(t *testing.T) {
	_, activitySvc, usersSvc := setupActivityFixture(t)
	registerAna(t, usersSvc)

	_, _, err := activitySvc.Log(context.Background(), "ana@x.com", "fly_less")
	require.ErrorIs(t, err, common.ErrorUnknownAction)
}

func TestLog_UnknownUser(t *testing.T) {
	_, activitySvc, _ := setupActivityFixture(t)

	_, _, err := activitySvc.Log(context.Background(), "ghost@x.com", models.ActionRecycle)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLog_PointsSurviveHistoryEviction(t *testing.T) {
	_, activitySvc, usersSvc := setupActivityFixture(t)
	ctx := context.Background()
	registerAna(t, usersSvc)

	// exceed the retention bound; every action still pays out
	for i := 0; i < common.HistoryLimit+5; i++ {
		_, _, err := activitySvc.Log(ctx, "ana@x.com", models.ActionReusableBottle)
		require.NoError(t, err)
	}

	history, err := activitySvc.History(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Len(t, history, common.HistoryLimit)

	user, err := usersSvc.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, (common.HistoryLimit+5)*5, user.EcoPoints,
		"lifetime total keeps growing past the retention window")
}

func TestHistory_Empty(t *testing.T) {
	_, activitySvc, usersSvc := setupActivityFixture(t)
	registerAna(t, usersSvc)

	history, err := activitySvc.History(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Empty(t, history)
}
