package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

var (
	ErrNoPendingDelivery    = errors.New("no pending delivery found")
	ErrNoAssignablePartners = errors.New("no assignable partners found")
)

// AutoAssignCommandHandler assigns the oldest pending delivery to the best
// assignable partner, going through the same aggregate method as a manual
// assignment. The parent order is locked and rechecked, so an order cancelled
// after the pick surfaces as ErrOrderNotConfirmed.
//
// Example:
//
//	err := handler.Handle(ctx, NewAutoAssignCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingDelivery):
//	    // nothing to do
//	case errors.Is(err, ErrNoAssignablePartners):
//	    // try again on the next tick
//	}
type AutoAssignCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAutoAssignCommandHandler(uowFactory DeliveryUoWFactory) AutoAssignCommandHandler {
	return AutoAssignCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AutoAssignCommandHandler) Handle(ctx context.Context, cmd AutoAssignCommand) (*delivery.Delivery, error) {
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
	d, err := deliveryRepo.GetFirstPendingForUpdate(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingDelivery
	}
	if err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, d.OrderID())
	if err != nil {
		return nil, err
	}
	if err = requireLiveOrder(o, false); err != nil {
		return nil, err
	}

	partners, err := uow.PartnerRepository().GetAllAssignable(ctx)
	if err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return nil, ErrNoAssignablePartners
	}

	if _, err = services.NewPartnerDispatcher().Dispatch(d, partners, time.Now()); err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			return nil, ErrNoAssignablePartners
		}
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
