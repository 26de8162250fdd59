package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a buyer's checkout of one seller's items.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.50")
//	item, _ := order.NewItem(productID, nil, 2, price)
//	cmd, err := NewCreateOrderCommand(buyerID, sellerID, addressID, []order.Item{item}, kernel.ZeroMoney())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.AccountID
	sellerID  kernel.AccountID
	addressID int64
	items     []order.Item
	discount  kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	buyerID kernel.AccountID,
	sellerID kernel.AccountID,
	addressID int64,
	items []order.Item,
	discount kernel.Money,
) (CreateOrderCommand, error) {
	if err := errors.Join(buyerID.Validate(), sellerID.Validate()); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	return CreateOrderCommand{
		buyerID:   buyerID,
		sellerID:  sellerID,
		addressID: addressID,
		items:     items,
		discount:  discount,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) BuyerID() kernel.AccountID {
	return c.buyerID
}

func (c CreateOrderCommand) SellerID() kernel.AccountID {
	return c.sellerID
}

func (c CreateOrderCommand) AddressID() int64 {
	return c.addressID
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}
