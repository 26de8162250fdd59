package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/pkg/errs"
)

// AdvanceDeliveryCommandHandler records the assigned partner's progress.
// Administrators may also advance a delivery on the partner's behalf. A
// delivery of a cancelled order does not move.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAdvanceDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AdvanceDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	actor := cmd.Actor()
	if actor.Role() != account.DeliveryPartner && actor.Role() != account.Admin {
		return nil, errs.NewRuleViolationError(
			errs.ErrRoleMismatch,
			fmt.Sprintf("%s may not report delivery progress", actor.Role()),
		)
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

	if err = authorizeLiveDelivery(ctx, uow.OrderRepository(), d, actor, true, true); err != nil {
		return nil, err
	}

	if err = d.Advance(cmd.Status(), time.Now()); err != nil {
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
