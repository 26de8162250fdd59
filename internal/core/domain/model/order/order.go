package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a marketplace purchase. It owns the item
// snapshots, the money totals and the lifecycle status.
//
// Order follows these invariants:
//   - Must have at least one item
//   - TotalAmount is the sum of quantity * unit price over all items
//   - DiscountAmount never exceeds TotalAmount
//   - FinalAmount is TotalAmount - DiscountAmount
//   - Status only changes through Transition
type Order struct {
	kernel.EventRecorder

	// id is the unique identifier for the order
	id kernel.UUID

	buyerID   kernel.AccountID
	sellerID  kernel.AccountID
	addressID int64

	items []Item

	totalAmount    kernel.Money
	discountAmount kernel.Money
	finalAmount    kernel.Money

	// status represents the current state in the order lifecycle
	status        Status
	paymentStatus PaymentStatus

	createdAt time.Time
	updatedAt time.Time

	// version guards concurrent updates; bumped by the repository on save
	version int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places a new pending order. Totals are derived from the items
// and the discount; callers never pass them directly.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("9.99")
//	item, _ := order.NewItem(42, nil, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, sellerID, 7, []order.Item{item}, kernel.ZeroMoney(), time.Now())
func NewOrder(
	id kernel.UUID,
	buyerID kernel.AccountID,
	sellerID kernel.AccountID,
	addressID int64,
	items []Item,
	discount kernel.Money,
	placedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate(), sellerID.Validate(), validateAddressID(addressID)); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	if discount.GreaterThan(total) {
		return nil, errs.NewValueIsOutOfRangeError("discount", discount.String(), "0", total.String())
	}
	final, err := total.Sub(discount)
	if err != nil {
		return nil, err
	}

	at := placedAt.UTC()
	o := &Order{
		id:             id,
		buyerID:        buyerID,
		sellerID:       sellerID,
		addressID:      addressID,
		items:          append([]Item(nil), items...),
		totalAmount:    total,
		discountAmount: discount,
		finalAmount:    final,
		status:         Pending,
		paymentStatus:  PaymentPending,
		createdAt:      at,
		updatedAt:      at,
		isConstructed:  true,
	}
	o.Raise(Placed{
		OrderID:     id.String(),
		BuyerID:     buyerID.Int64(),
		SellerID:    sellerID.Int64(),
		FinalAmount: final.String(),
		At:          at,
	})
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The stored totals are
// trusted as written at checkout; they are not recomputed.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.AccountID,
	sellerID kernel.AccountID,
	addressID int64,
	items []Item,
	totalAmount kernel.Money,
	discountAmount kernel.Money,
	finalAmount kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		buyerID:        buyerID,
		sellerID:       sellerID,
		addressID:      addressID,
		items:          items,
		totalAmount:    totalAmount,
		discountAmount: discountAmount,
		finalAmount:    finalAmount,
		status:         status,
		paymentStatus:  paymentStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		version:        version,
		isConstructed:  true,
	}, nil
}

func validateAddressID(addressID int64) error {
	if addressID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("address id", fmt.Errorf("%d is not greater than 0", addressID))
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) BuyerID() kernel.AccountID {
	return o.buyerID
}

func (o *Order) SellerID() kernel.AccountID {
	return o.sellerID
}

func (o *Order) AddressID() int64 {
	return o.addressID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) DiscountAmount() kernel.Money {
	return o.discountAmount
}

func (o *Order) FinalAmount() kernel.Money {
	return o.finalAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int {
	return o.version
}

// IsVisibleTo reports whether the account may read or act on the order.
// Administrators see every order; buyers and sellers only their own.
func (o *Order) IsVisibleTo(id kernel.AccountID, role account.Role) bool {
	switch role {
	case account.Admin:
		return true
	case account.Buyer:
		return o.buyerID == id
	case account.Seller:
		return o.sellerID == id
	default:
		return false
	}
}

// Transition moves the order to next on behalf of an actor with the given role.
//
// Checks run in this order:
//   - next must be a successor of the current status (ErrIllegalTransition)
//   - the actor must be allowed to take that edge (ErrRoleMismatch)
//   - buyers and sellers may only cancel while the cancellation policy
//     allows it (ErrIllegalTransition); administrators are not restricted
//
// Payment status is never touched here.
func (o *Order) Transition(next Status, actor account.Role, at time.Time) error {
	if _, err := o.status.Transition(next); err != nil {
		return err
	}
	if err := o.checkActor(next, actor); err != nil {
		return err
	}

	from := o.status
	o.status = next
	o.updatedAt = at.UTC()

	o.Raise(StatusChanged{
		OrderID: o.id.String(),
		BuyerID: o.buyerID.Int64(),
		From:    from.String(),
		To:      next.String(),
		Actor:   actor.String(),
		At:      o.updatedAt,
	})
	return nil
}

func (o *Order) checkActor(next Status, actor account.Role) error {
	if actor == account.Admin {
		return nil
	}

	if next == Cancelled {
		if actor != account.Buyer && actor != account.Seller {
			return errs.NewRuleViolationError(errs.ErrRoleMismatch, fmt.Sprintf("%s may not cancel orders", actor))
		}
		if !o.status.IsCancellable() {
			return errs.NewRuleViolationError(
				errs.ErrIllegalTransition,
				fmt.Sprintf("%s order can only be cancelled by an administrator", o.status),
			)
		}
		return nil
	}

	// every forward edge belongs to the seller
	if actor != account.Seller {
		return errs.NewRuleViolationError(
			errs.ErrRoleMismatch,
			fmt.Sprintf("%s may not move an order to %s", actor, next),
		)
	}
	return nil
}
