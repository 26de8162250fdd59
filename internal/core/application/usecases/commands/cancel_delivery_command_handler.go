package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler cancels a delivery and leaves its order alone.
// The seller, an administrator or the assigned partner may cancel.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CancelDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = authorizeDelivery(ctx, uow.OrderRepository(), d, cmd.Actor(), true); err != nil {
		return nil, err
	}

	if err = d.Cancel(cmd.Reason(), time.Now()); err != nil {
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
