package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	pickup  delivery.Snapshot
	drop    delivery.Snapshot
	fee     kernel.Money
	actor   Actor

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand builds the seller request that opens a delivery.
// fee is an estimate supplied by the caller.
func NewCreateDeliveryCommand(
	orderID kernel.UUID,
	pickup delivery.Snapshot,
	drop delivery.Snapshot,
	fee kernel.Money,
	actor Actor,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		orderID: orderID,
		pickup:  pickup,
		drop:    drop,
		fee:     fee,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryCommand) Pickup() delivery.Snapshot {
	return c.pickup
}

func (c CreateDeliveryCommand) Drop() delivery.Snapshot {
	return c.drop
}

func (c CreateDeliveryCommand) Fee() kernel.Money {
	return c.fee
}

func (c CreateDeliveryCommand) Actor() Actor {
	return c.actor
}
