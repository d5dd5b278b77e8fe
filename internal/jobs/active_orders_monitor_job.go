package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ActiveOrdersMonitorJob periodically reports how many orders are still
// moving through the lifecycle. The job is purely observational: it reads
// through the query model and never mutates state.
type ActiveOrdersMonitorJob struct {
	handler  queries.GetActiveOrdersQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewActiveOrdersMonitorJob creates a monitor job with the given cron
// schedule (six-field expression, seconds included).
func NewActiveOrdersMonitorJob(
	handler queries.GetActiveOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ActiveOrdersMonitorJob {
	return &ActiveOrdersMonitorJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "active_orders_monitor_job"),
	}
}

// Start begins the monitor job on its schedule.
func (j *ActiveOrdersMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetActiveOrdersQuery()

		activeOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Active orders monitor job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Active orders", "count", len(activeOrders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders monitor job started", "schedule", j.schedule)
	return nil
}

// Stop stops the monitor job.
func (j *ActiveOrdersMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Active orders monitor job stopped")
}
