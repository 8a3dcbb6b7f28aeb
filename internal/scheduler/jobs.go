package scheduler

import (
	"context"

	"github.com/luminark/holdings/internal/config"
)

const (
	JobRefreshDashboard = "refresh-dashboard"
	JobDailyBackup      = "daily-backup"
)

// DashboardRefresher recomputes the cached dashboard
type DashboardRefresher interface {
	Refresh(ctx context.Context) error
}

// StateSnapshotter writes the current state so that today's backup exists
type StateSnapshotter interface {
	SnapshotState(ctx context.Context) error
}

// RegisterJobs adds the dashboard refresh and daily backup jobs
func (s *Scheduler) RegisterJobs(cfg config.Jobs, dashboard DashboardRefresher, state StateSnapshotter) error {
	if err := s.NewIntervalJob(JobRefreshDashboard, dashboard.Refresh, cfg.DashboardRefreshInterval, true); err != nil {
		return err
	}
	return s.NewCrontabJob(JobDailyBackup, state.SnapshotState, cfg.BackupCron, false)
}
