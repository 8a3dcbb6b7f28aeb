package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminark/holdings/internal/config"
	"github.com/luminark/holdings/internal/db"
	"github.com/luminark/holdings/internal/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func setupSQLite(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Connect(config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "state.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestStateRepository_GetReturnsInitialState(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	repo := NewStateRepositoryWithClock(setupSQLite(t), "test_state", 7, clock.Now)

	state, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Investments)
	assert.Empty(t, state.Transactions)
	assert.True(t, state.Cash.IsZero())
	assert.Equal(t, "IDR", state.Settings.Currency)
	assert.Equal(t, models.StateVersion, state.Settings.Version)

	backups, err := repo.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, backups, "reading must not write")
}

func TestStateRepository_PutThenGet(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	repo := NewStateRepositoryWithClock(setupSQLite(t), "test_state", 7, clock.Now)

	state, err := repo.Get(ctx)
	require.NoError(t, err)
	invested := decimal.NewFromInt(900)
	state.Investments = append(state.Investments, models.Investment{
		ID:             "inv-1",
		Name:           "Gold bar",
		Category:       models.CategoryGold,
		Status:         models.StatusActive,
		InitialCapital: decimal.NewFromInt(1000),
		Invested:       &invested,
		CurrentValue:   decimal.NewFromInt(1100),
		Currency:       "IDR",
	})
	state.Cash = decimal.NewFromInt(250_000)
	require.NoError(t, repo.Put(ctx, state))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got.Investments, 1)
	assert.Equal(t, "Gold bar", got.Investments[0].Name)
	require.NotNil(t, got.Investments[0].Invested)
	assert.True(t, invested.Equal(*got.Investments[0].Invested))
	assert.True(t, decimal.NewFromInt(250_000).Equal(got.Cash))
	assert.True(t, clock.t.Equal(got.Settings.LastUpdate))

	backups, err := repo.ListBackups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-10"}, backups)

	snap, err := repo.GetBackup(ctx, "2024-03-10")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Len(t, snap.Investments, 1)
}

func TestStateRepository_SameDayOverwritesSnapshot(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	repo := NewStateRepositoryWithClock(setupSQLite(t), "test_state", 7, clock.Now)

	state := models.NewAppState(clock.t)
	require.NoError(t, repo.Put(ctx, state))

	clock.t = clock.t.Add(3 * time.Hour)
	state.Cash = decimal.NewFromInt(42)
	require.NoError(t, repo.Put(ctx, state))

	backups, err := repo.ListBackups(ctx)
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	snap, err := repo.GetBackup(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(42).Equal(snap.Cash))
}

func TestStateRepository_RetainsAtMostSevenSnapshots(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: start}
	repo := NewStateRepositoryWithClock(setupSQLite(t), "test_state", 7, clock.Now)

	state := models.NewAppState(start)
	for day := 0; day < 10; day++ {
		clock.t = start.AddDate(0, 0, day)
		require.NoError(t, repo.Put(ctx, state))
	}

	backups, err := repo.ListBackups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07",
		"2024-03-08", "2024-03-09", "2024-03-10",
	}, backups)

	evicted, err := repo.GetBackup(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Nil(t, evicted)
}

func TestStateRepository_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	database := setupSQLite(t)
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	a := NewStateRepositoryWithClock(database, "a_state", 7, clock.Now)
	b := NewStateRepositoryWithClock(database, "b_state", 7, clock.Now)

	sa := models.NewAppState(clock.t)
	sa.Cash = decimal.NewFromInt(1)
	require.NoError(t, a.Put(ctx, sa))

	sb, err := b.Get(ctx)
	require.NoError(t, err)
	assert.True(t, sb.Cash.IsZero())

	bb, err := b.ListBackups(ctx)
	require.NoError(t, err)
	assert.Empty(t, bb)
}
