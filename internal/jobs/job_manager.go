package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	activeOrdersMonitorJob *ActiveOrdersMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	monitorSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		activeOrdersMonitorJob: NewActiveOrdersMonitorJob(getActiveOrdersHandler, monitorSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.activeOrdersMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start active orders monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.activeOrdersMonitorJob.Stop()
}
