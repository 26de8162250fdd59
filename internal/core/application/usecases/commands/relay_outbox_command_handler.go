package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// RelayOutboxCommandHandler hands unsent outbox messages to the notifier.
//
// Messages are marked sent in the same transaction that locked them, so a
// message whose notification failed stays unsent and is retried on the next
// round. Delivery to the notifier is therefore at least once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	notifier   ports.Notifier
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, notifier ports.Notifier) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle returns the number of messages relayed. A notifier failure stops the
// round; messages relayed before it are still marked sent.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnsent(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	sent := make([]kernel.UUID, 0, len(messages))
	var notifyErr error
	for _, m := range messages {
		if notifyErr = h.notifier.Notify(ctx, m); notifyErr != nil {
			break
		}
		sent = append(sent, m.ID)
	}

	if len(sent) > 0 {
		if err = outbox.MarkSent(ctx, sent, time.Now()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(sent), notifyErr
}
