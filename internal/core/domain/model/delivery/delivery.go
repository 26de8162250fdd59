package delivery

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not built via NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is the fulfillment record of one order.
//
// Invariants:
//   - never exists for a pending order
//   - partnerID is nil exactly while the delivery is pending, or when it was
//     cancelled before assignment
//   - delivered and cancelled are terminal
type Delivery struct {
	kernel.EventRecorder

	id      kernel.UUID
	orderID kernel.UUID

	pickup Snapshot
	drop   Snapshot
	fee    kernel.Money

	partnerID          *kernel.AccountID
	status             Status
	cancellationReason string

	createdAt time.Time
	updatedAt time.Time
	version   int

	isConstructed bool
}

// NewDelivery opens a pending delivery for o. The order must already be
// confirmed, processing or shipped. Uniqueness per order is enforced by the
// caller and by storage.
func NewDelivery(
	id kernel.UUID,
	o *order.Order,
	pickup Snapshot,
	drop Snapshot,
	fee kernel.Money,
	at time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), o.Validate()); err != nil {
		return nil, err
	}
	if !o.Status().AllowsDelivery() {
		return nil, errs.NewRuleViolationError(
			errs.ErrOrderNotConfirmed,
			fmt.Sprintf("order %s is %s", o.ID(), o.Status()),
		)
	}
	if err := errors.Join(pickup.Validate("pickup"), drop.Validate("drop")); err != nil {
		return nil, err
	}

	created := at.UTC()
	d := &Delivery{
		id:            id,
		orderID:       o.ID(),
		pickup:        pickup,
		drop:          drop,
		fee:           fee,
		status:        Pending,
		createdAt:     created,
		updatedAt:     created,
		isConstructed: true,
	}
	d.Raise(Created{
		DeliveryID: id.String(),
		OrderID:    d.orderID.String(),
		Fee:        fee.String(),
		At:         created,
	})
	return d, nil
}

// RestoreDelivery rebuilds a delivery loaded from storage.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	pickup Snapshot,
	drop Snapshot,
	fee kernel.Money,
	partnerID *kernel.AccountID,
	status Status,
	cancellationReason string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if partnerID == nil && status != Pending && status != Cancelled {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"partner id",
			fmt.Errorf("%s delivery has no partner", status),
		)
	}

	return &Delivery{
		id:                 id,
		orderID:            orderID,
		pickup:             pickup,
		drop:               drop,
		fee:                fee,
		partnerID:          partnerID,
		status:             status,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		version:            version,
		isConstructed:      true,
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) Pickup() Snapshot {
	return d.pickup
}

func (d *Delivery) Drop() Snapshot {
	return d.drop
}

func (d *Delivery) Fee() kernel.Money {
	return d.fee
}

func (d *Delivery) PartnerID() *kernel.AccountID {
	return d.partnerID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) CancellationReason() string {
	return d.cancellationReason
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Delivery) Version() int {
	return d.version
}

// IsAssignedTo reports whether partnerID currently holds the delivery.
func (d *Delivery) IsAssignedTo(partnerID kernel.AccountID) bool {
	return d.partnerID != nil && *d.partnerID == partnerID
}

// CanAssign checks the status precondition of AssignPartner without mutating,
// so the caller can run it before asking the availability collaborator.
func (d *Delivery) CanAssign() error {
	if d.status != Pending {
		return errs.NewRuleViolationError(
			errs.ErrNotPending,
			fmt.Sprintf("delivery %s is %s", d.id, d.status),
		)
	}
	return nil
}

// AssignPartner hands a pending delivery to a partner. Availability is the
// caller's responsibility.
func (d *Delivery) AssignPartner(partnerID kernel.AccountID, at time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if err := d.CanAssign(); err != nil {
		return err
	}

	d.partnerID = &partnerID
	d.status = Assigned
	d.updatedAt = at.UTC()

	d.Raise(PartnerAssigned{
		DeliveryID: d.id.String(),
		OrderID:    d.orderID.String(),
		PartnerID:  partnerID.Int64(),
		At:         d.updatedAt,
	})
	return nil
}

// CanReassign checks that the delivery is assigned and partnerID is a
// different partner.
func (d *Delivery) CanReassign(partnerID kernel.AccountID) error {
	if d.status != Assigned {
		return errs.NewRuleViolationError(
			errs.ErrIllegalTransition,
			fmt.Sprintf("only assigned deliveries can be reassigned, delivery %s is %s", d.id, d.status),
		)
	}
	if d.IsAssignedTo(partnerID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"partner id",
			fmt.Errorf("partner %s already holds delivery %s", partnerID, d.id),
		)
	}
	return nil
}

// ReassignPartner swaps the partner of an assigned delivery that has not
// started moving yet. The status stays Assigned.
func (d *Delivery) ReassignPartner(partnerID kernel.AccountID, at time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if err := d.CanReassign(partnerID); err != nil {
		return err
	}

	previous := *d.partnerID
	d.partnerID = &partnerID
	d.updatedAt = at.UTC()

	d.Raise(PartnerAssigned{
		DeliveryID:        d.id.String(),
		OrderID:           d.orderID.String(),
		PartnerID:         partnerID.Int64(),
		PreviousPartnerID: previous.Int64(),
		At:                d.updatedAt,
	})
	return nil
}

// Advance moves the delivery one step along the partner progression.
func (d *Delivery) Advance(next Status, at time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return errs.NewRuleViolationError(
			errs.ErrTerminalState,
			fmt.Sprintf("delivery %s is %s", d.id, d.status),
		)
	}
	expected, ok := d.status.Next()
	if !ok || expected != next {
		return errs.NewRuleViolationError(
			errs.ErrIllegalTransition,
			fmt.Sprintf("%s -> %s", d.status, next),
		)
	}

	d.changeStatus(next, "", at)
	return nil
}

// Cancel ends the delivery. The parent order keeps its status, so the seller
// can open a new delivery without re-confirming.
func (d *Delivery) Cancel(reason string, at time.Time) error {
	if !d.status.IsCancellable() {
		return errs.NewRuleViolationError(
			errs.ErrTerminalState,
			fmt.Sprintf("delivery %s is %s", d.id, d.status),
		)
	}

	d.cancellationReason = reason
	d.changeStatus(Cancelled, reason, at)
	return nil
}

func (d *Delivery) changeStatus(next Status, reason string, at time.Time) {
	from := d.status
	d.status = next
	d.updatedAt = at.UTC()

	d.Raise(StatusChanged{
		DeliveryID: d.id.String(),
		OrderID:    d.orderID.String(),
		From:       from.String(),
		To:         next.String(),
		Reason:     reason,
		At:         d.updatedAt,
	})
}
