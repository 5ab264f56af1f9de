// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to drain pending outbox messages to the message bus
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, producer, logger)
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
// The relay uses the cron expression "* * * * * *", running every second so
// committed events reach the bus with minimal delay.
//
// # Error Handling
//
// A failed tick is logged and retried on the next tick. Because rows are only
// marked sent after a successful produce, delivery is at-least-once and
// consumers must deduplicate by event ID.
package jobs
