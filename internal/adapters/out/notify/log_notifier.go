// Package notify hands outbox messages to the notification layer. Sending
// email or push messages happens outside this service; the notifier shipped
// here records each event in the structured log, which the log pipeline
// forwards.
package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// LogNotifier implements ports.Notifier by writing one log record per event.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, message ports.OutboxMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "Domain event published",
		"event", message.Name,
		"message_id", message.ID.String(),
		"aggregate_id", message.AggregateID,
		"occurred_at", message.OccurredAt,
		"payload", string(message.Payload),
	)
	return nil
}
