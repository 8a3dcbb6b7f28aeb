package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminark/holdings/internal/models"
)

func TestDashboardCache(t *testing.T) {
	repo := newMockStateRepository()
	investments := NewInvestmentService(repo, newTestPortfolio(), nil)
	cache := NewDashboardCache(investments)
	ctx := context.Background()

	first, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, first.Cash.IsZero())

	require.NoError(t, investments.SetCash(ctx, d(100)))

	stale, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stale.Cash.IsZero(), "cached value is served until refreshed")

	require.NoError(t, cache.Refresh(ctx))
	fresh, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, d(100).Equal(fresh.Cash))

	require.NoError(t, investments.SetCash(ctx, d(200)))
	cache.Invalidate()
	recomputed, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, d(200).Equal(recomputed.Cash))
}

// gatedDashboard counts Dashboard calls; the first call blocks until release
// is closed so a test can interleave an invalidation.
type gatedDashboard struct {
	InvestmentService
	calls   atomic.Int64
	entered chan struct{}
	release chan struct{}
}

func newGatedDashboard() *gatedDashboard {
	return &gatedDashboard{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedDashboard) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	n := g.calls.Add(1)
	if n == 1 {
		close(g.entered)
		<-g.release
	}
	return &models.DashboardStats{Cash: d(n * 100), PortfolioCount: int(n)}, nil
}

func TestDashboardCache_RefreshDoesNotOverwriteInvalidation(t *testing.T) {
	investments := newGatedDashboard()
	cache := NewDashboardCache(investments)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- cache.Refresh(ctx) }()

	<-investments.entered
	cache.Invalidate()
	close(investments.release)
	require.NoError(t, <-done)

	stats, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PortfolioCount, "stats computed before the invalidation must be discarded")
	assert.EqualValues(t, 2, investments.calls.Load())
}

func TestDashboardCache_GetReturnsComputedStatsDespiteInvalidation(t *testing.T) {
	investments := newGatedDashboard()
	cache := NewDashboardCache(investments)
	ctx := context.Background()

	type result struct {
		stats *models.DashboardStats
		err   error
	}
	done := make(chan result, 1)
	go func() {
		stats, err := cache.Get(ctx)
		done <- result{stats, err}
	}()

	<-investments.entered
	cache.Invalidate()
	close(investments.release)

	got := <-done
	require.NoError(t, got.err)
	require.NotNil(t, got.stats)
	assert.Equal(t, 1, got.stats.PortfolioCount)
}
