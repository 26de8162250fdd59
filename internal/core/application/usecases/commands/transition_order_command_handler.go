package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies one order lifecycle transition.
//
// The order row is locked for the whole transaction, so the successor check and
// the write cannot interleave with a concurrent transition of the same order.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ErrObjectNotFound for a buyer or seller acting on someone
// else's order, ErrIllegalTransition for non-successor moves and
// ErrRoleMismatch when the actor may not take the edge.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if isParty(actor) && !o.IsVisibleTo(actor.ID(), actor.Role()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = o.Transition(cmd.Status(), actor.Role(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// isParty reports whether the actor's access to an order depends on owning it.
func isParty(actor Actor) bool {
	return actor.Role() == account.Buyer || actor.Role() == account.Seller
}
