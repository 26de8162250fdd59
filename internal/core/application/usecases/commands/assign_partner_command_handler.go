package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AssignPartnerCommandHandler runs the first assignment of a delivery.
//
// Checks run in this order: delivery exists and the actor may manage it,
// the order is still live (ErrOrderNotConfirmed), delivery is pending
// (ErrNotPending), partner is assignable (ErrPartnerUnavailable).
type AssignPartnerCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAssignPartnerCommandHandler(uowFactory DeliveryUoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return changePartner(ctx, h.uowFactory, cmd.DeliveryID(), cmd.PartnerID(), cmd.Actor(),
		func(d *delivery.Delivery) error { return d.CanAssign() },
		func(d *delivery.Delivery, at time.Time) error { return d.AssignPartner(cmd.PartnerID(), at) },
	)
}

// ReassignPartnerCommandHandler moves an assigned delivery to another partner.
// Only assigned deliveries qualify (ErrIllegalTransition otherwise).
type ReassignPartnerCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewReassignPartnerCommandHandler(uowFactory DeliveryUoWFactory) ReassignPartnerCommandHandler {
	return ReassignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReassignPartnerCommandHandler) Handle(
	ctx context.Context,
	cmd ReassignPartnerCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return changePartner(ctx, h.uowFactory, cmd.DeliveryID(), cmd.PartnerID(), cmd.Actor(),
		func(d *delivery.Delivery) error { return d.CanReassign(cmd.PartnerID()) },
		func(d *delivery.Delivery, at time.Time) error { return d.ReassignPartner(cmd.PartnerID(), at) },
	)
}

func changePartner(
	ctx context.Context,
	uowFactory DeliveryUoWFactory,
	deliveryID kernel.UUID,
	partnerID kernel.AccountID,
	actor Actor,
	precondition func(d *delivery.Delivery) error,
	apply func(d *delivery.Delivery, at time.Time) error,
) (*delivery.Delivery, error) {
	if err := requireSellerOrAdmin(actor); err != nil {
		return nil, err
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetForUpdate(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err = authorizeLiveDelivery(ctx, uow.OrderRepository(), d, actor, false, false); err != nil {
		return nil, err
	}

	if err = precondition(d); err != nil {
		return nil, err
	}

	assignable, err := uow.PartnerRepository().IsAssignable(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !assignable {
		return nil, errs.NewRuleViolationError(
			errs.ErrPartnerUnavailable,
			fmt.Sprintf("partner %s is not verified or not available", partnerID),
		)
	}

	if err = apply(d, time.Now()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
