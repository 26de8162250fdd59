package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a state change.
// Events are serialized into the outbox in the same transaction as the change.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// EventRecorder collects the events raised by an aggregate until the unit of
// work drains them. Embed it by value.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Raise(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the pending events in the order they were raised.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
