// Package jobs provides scheduled background tasks for the marketplace core.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
//  1. OutboxRelayJob - hands committed domain events to the notifier
//  2. AutoAssignJob - assigns the oldest pending delivery to the best available
//     partner (optional; disabled when no schedule is configured)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, autoAssignHandler, jobs.Options{
//		OutboxRelaySchedule: "*/5 * * * * *",
//		OutboxBatchSize:     100,
//		AutoAssignSchedule:  "*/30 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Auto assignment ignores expected outcomes (nothing pending, nobody free)
// - A lost race against a manual assignment is logged at debug level
// - Relay failures leave messages unsent; they are retried on the next tick
// - Failed job starts stop any already running jobs
package jobs
