// Package outboxrepo stores domain events written by the unit of work and
// serves them to the relay job.
package outboxrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one stored event. SentAt stays NULL until the relay hands
// the message to the notifier.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:64;not null"`
	AggregateID string     `gorm:"size:64;not null;index"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	SentAt      *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// FromEvent serializes a domain event into a new outbox row.
func FromEvent(event kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, err
	}
	return MessageDTO{
		ID:          kernel.NewUUID().Bytes(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID(),
		Payload:     string(payload),
		OccurredAt:  event.OccurredAt(),
	}, nil
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: dto.AggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
