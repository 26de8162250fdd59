package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CreateDeliveryCommandHandler opens a pending delivery for a confirmed order.
//
// The parent order row is locked before the active-delivery check so two
// concurrent requests for the same order cannot both pass it. A partial unique
// index on deliveries backs the same rule in storage.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireSellerOrAdmin(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	actor := cmd.Actor()
	if isParty(actor) && !o.IsVisibleTo(actor.ID(), actor.Role()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o, cmd.Pickup(), cmd.Drop(), cmd.Fee(), time.Now())
	if err != nil {
		return nil, err
	}

	deliveryRepo := uow.DeliveryRepository()
	exists, err := deliveryRepo.HasActiveForOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewRuleViolationError(
			errs.ErrDeliveryAlreadyExists,
			fmt.Sprintf("order %s already has an active delivery", o.ID()),
		)
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
