package delivery

import (
	"fmt"

	"marketplace/internal/core/domain/model/cancellation"
	"marketplace/internal/pkg/errs"
)

// Status of a delivery.
//
//	Pending ──assign──> Assigned ──> InProgress ──> PickedUp ──> OutForDelivery ──> Delivered
//
// Every non-terminal status may move to Cancelled.
type Status int

const (
	Unknown Status = iota
	Pending
	Assigned
	InProgress
	PickedUp
	OutForDelivery
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Assigned:       "assigned",
		InProgress:     "in_progress",
		PickedUp:       "picked_up",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getProgression holds the partner-driven edges. Assignment and cancellation
// have their own operations.
func getProgression() map[Status]Status {
	//nolint:exhaustive // only progressing statuses have a next step
	return map[Status]Status{
		Assigned:       InProgress,
		InProgress:     PickedUp,
		PickedUp:       OutForDelivery,
		OutForDelivery: Delivered,
	}
}

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

// IsActive reports whether the delivery still blocks a new one for its order.
func (s Status) IsActive() bool {
	return s != Cancelled && s != Unknown
}

func (s Status) IsCancellable() bool {
	return cancellation.CanCancel(s.String(), cancellation.Delivery)
}

// Next returns the single status a partner may advance to from s.
func (s Status) Next() (Status, bool) {
	next, ok := getProgression()[s]
	return next, ok
}
