package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderFulfillmentQueryIsNotConstructed = errors.New(
		"GetOrderFulfillmentQuery must be created via NewGetOrderFulfillmentQuery constructor",
	)
)

// GetOrderFulfillmentQuery reads the combined order and delivery state a
// screen needs, including whether cancel controls should be offered.
//
// Example:
//
//	query, err := NewGetOrderFulfillmentQuery(orderID, viewer.ID(), viewer.Role())
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if view.Cancellable {
//	    // render the cancel button
//	}
type GetOrderFulfillmentQuery struct {
	orderID  kernel.UUID
	viewerID kernel.AccountID
	role     account.Role

	guard guard.ConstructorGuard
}

func NewGetOrderFulfillmentQuery(
	orderID kernel.UUID,
	viewerID kernel.AccountID,
	role account.Role,
) (GetOrderFulfillmentQuery, error) {
	if err := errors.Join(orderID.Validate(), viewerID.Validate(), role.Validate()); err != nil {
		return GetOrderFulfillmentQuery{}, err
	}
	return GetOrderFulfillmentQuery{
		orderID:  orderID,
		viewerID: viewerID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderFulfillmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderFulfillmentQuery) ViewerID() kernel.AccountID {
	return q.viewerID
}

func (q GetOrderFulfillmentQuery) Role() account.Role {
	return q.role
}

func (q GetOrderFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFulfillmentQueryIsNotConstructed)
}

// GetOrderFulfillmentQueryResponse is the fulfillment view of one order.
// Delivery is nil until the seller opens one.
type GetOrderFulfillmentQueryResponse struct {
	OrderID       kernel.UUID
	Status        string
	PaymentStatus string
	FinalAmount   decimal.Decimal
	Cancellable   bool
	Delivery      *FulfillmentDelivery
}

// FulfillmentDelivery is the most recent delivery of an order.
type FulfillmentDelivery struct {
	ID          kernel.UUID
	Status      string
	PartnerID   *kernel.AccountID
	Cancellable bool
}
