package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler places a pending order. The seller must exist and
// be approved; orders are never placed with an unapproved seller.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	seller, err := uow.AccountRepository().Get(ctx, cmd.SellerID())
	if err != nil {
		return nil, err
	}
	if seller.Role() != account.Seller {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"seller id",
			fmt.Errorf("account %s is a %s", seller.ID(), seller.Role()),
		)
	}
	if !seller.IsApproved() {
		return nil, errs.NewRuleViolationError(
			errs.ErrPendingApproval,
			fmt.Sprintf("seller %s is not approved", seller.ID()),
		)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.BuyerID(),
		cmd.SellerID(),
		cmd.AddressID(),
		cmd.Items(),
		cmd.Discount(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
