package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand is a partner progress report such as "picked up".
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	actor      Actor

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryCommand(
	deliveryID kernel.UUID,
	status delivery.Status,
	actor Actor,
) (AdvanceDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return AdvanceDeliveryCommand{
		deliveryID: deliveryID,
		status:     status,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AdvanceDeliveryCommand) Status() delivery.Status {
	return c.status
}

func (c AdvanceDeliveryCommand) Actor() Actor {
	return c.actor
}
