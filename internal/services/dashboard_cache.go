package services

import (
	"context"
	"sync"

	"github.com/luminark/holdings/internal/models"
)

// DashboardCache holds the most recently computed dashboard. The scheduler
// refreshes it periodically; readers fall back to computing on a cold cache.
type DashboardCache struct {
	investments InvestmentService

	mu    sync.RWMutex
	stats *models.DashboardStats
	// generation counts invalidations; a refresh that started before the
	// latest one must not store its result.
	generation uint64
}

func NewDashboardCache(investments InvestmentService) *DashboardCache {
	return &DashboardCache{investments: investments}
}

// Refresh recomputes and stores the dashboard
func (c *DashboardCache) Refresh(ctx context.Context) error {
	_, err := c.refresh(ctx)
	return err
}

func (c *DashboardCache) refresh(ctx context.Context) (*models.DashboardStats, error) {
	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	stats, err := c.investments.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generation == generation {
		c.stats = stats
	}
	c.mu.Unlock()
	return stats, nil
}

// Get returns the cached dashboard, computing it first when nothing is cached
func (c *DashboardCache) Get(ctx context.Context) (*models.DashboardStats, error) {
	c.mu.RLock()
	stats := c.stats
	c.mu.RUnlock()
	if stats != nil {
		return stats, nil
	}
	return c.refresh(ctx)
}

// Invalidate drops the cached dashboard so the next Get recomputes it
func (c *DashboardCache) Invalidate() {
	c.mu.Lock()
	c.stats = nil
	c.generation++
	c.mu.Unlock()
}
