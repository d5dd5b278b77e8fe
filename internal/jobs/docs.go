// Package jobs provides scheduled background tasks for the order tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ActiveOrdersMonitorJob - Periodically logs the number of orders that
// have not yet reached a terminal status, giving operators a cheap pulse on
// in-flight workload without touching the write model.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, "*/30 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds included). The monitor
// default of "*/30 * * * * *" runs every thirty seconds.
//
// # Error Handling
//
// - Monitor job logs query failures and keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
