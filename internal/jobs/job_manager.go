package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	autoAssignJob  *AutoAssignJob
}

// Options configures the scheduled jobs. An empty AutoAssignSchedule leaves
// assignment entirely to sellers and administrators.
type Options struct {
	OutboxRelaySchedule string
	OutboxBatchSize     int
	AutoAssignSchedule  string
}

func NewJobManager(
	relayHandler outboxRelayer,
	autoAssignHandler autoAssigner,
	opts Options,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayHandler, opts.OutboxRelaySchedule, opts.OutboxBatchSize, logger),
	}
	if opts.AutoAssignSchedule != "" {
		jm.autoAssignJob = NewAutoAssignJob(autoAssignHandler, opts.AutoAssignSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if jm.autoAssignJob != nil {
		if err := jm.autoAssignJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.outboxRelayJob.Stop()
			return fmt.Errorf("failed to start auto assign job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	if jm.autoAssignJob != nil {
		jm.autoAssignJob.Stop()
	}
	jm.outboxRelayJob.Stop()
}
