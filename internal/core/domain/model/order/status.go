package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/cancellation"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │              │
//	   └────────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Confirmed
	Processing
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getSuccessors is the complete transition table.
func getSuccessors() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no successors
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
	}
}

// ParseStatus maps a persisted or requested status name to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if name == s && st != Unknown {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is in the successor set of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range getSuccessors()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Transition validates the move from s to next against the successor table.
// It never picks a "nearest" legal status.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewRuleViolationError(
			errs.ErrIllegalTransition,
			fmt.Sprintf("order is %s, no further transition is allowed", s),
		)
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewRuleViolationError(
			errs.ErrIllegalTransition,
			fmt.Sprintf("%s -> %s", s, next),
		)
	}
	return next, nil
}

// AllowsDelivery reports whether a delivery may be created for an order in s.
func (s Status) AllowsDelivery() bool {
	return s == Confirmed || s == Processing || s == Shipped
}

// IsCancellable applies the shared cancellation policy.
func (s Status) IsCancellable() bool {
	return cancellation.CanCancel(s.String(), cancellation.Order)
}

// PaymentStatus is recorded with the order but owned by the payment layer.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

func getPaymentStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, name := range getPaymentStrings() {
		if name == s && st != PaymentUnknown {
			return st, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

func (p PaymentStatus) Validate() error {
	if p < PaymentPending || p > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

func (p PaymentStatus) String() string {
	if str, ok := getPaymentStrings()[p]; ok {
		return str
	}
	return "unknown"
}
