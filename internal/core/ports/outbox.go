package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event persisted in the same transaction as the
// state change that raised it.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID string
	Payload     []byte
	OccurredAt  time.Time
}

type OutboxRepository interface {
	// GetUnsent locks up to limit unsent messages in occurrence order.
	GetUnsent(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// Notifier hands an event to the notification layer. Delivery to users is not
// this core's concern.
type Notifier interface {
	Notify(ctx context.Context, message OutboxMessage) error
}
