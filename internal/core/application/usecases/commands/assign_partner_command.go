package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAssignPartnerCommandIsNotConstructed = errors.New(
		"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
	)
	ErrReassignPartnerCommandIsNotConstructed = errors.New(
		"ReassignPartnerCommand must be created via NewReassignPartnerCommand constructor",
	)
)

// AssignPartnerCommand hands a pending delivery to a partner.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	partnerID  kernel.AccountID
	actor      Actor

	guard guard.ConstructorGuard
}

func NewAssignPartnerCommand(deliveryID kernel.UUID, partnerID kernel.AccountID, actor Actor) (AssignPartnerCommand, error) {
	if err := errors.Join(deliveryID.Validate(), partnerID.Validate(), actor.Validate()); err != nil {
		return AssignPartnerCommand{}, err
	}

	return AssignPartnerCommand{
		deliveryID: deliveryID,
		partnerID:  partnerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

func (c AssignPartnerCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignPartnerCommand) PartnerID() kernel.AccountID {
	return c.partnerID
}

func (c AssignPartnerCommand) Actor() Actor {
	return c.actor
}

// ReassignPartnerCommand swaps the partner of an assigned delivery. It is a
// separate operation so a second assign never silently overwrites.
type ReassignPartnerCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	partnerID  kernel.AccountID
	actor      Actor

	guard guard.ConstructorGuard
}

func NewReassignPartnerCommand(
	deliveryID kernel.UUID,
	partnerID kernel.AccountID,
	actor Actor,
) (ReassignPartnerCommand, error) {
	if err := errors.Join(deliveryID.Validate(), partnerID.Validate(), actor.Validate()); err != nil {
		return ReassignPartnerCommand{}, err
	}

	return ReassignPartnerCommand{
		deliveryID: deliveryID,
		partnerID:  partnerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrReassignPartnerCommandIsNotConstructed)
}

func (c ReassignPartnerCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ReassignPartnerCommand) PartnerID() kernel.AccountID {
	return c.partnerID
}

func (c ReassignPartnerCommand) Actor() Actor {
	return c.actor
}
