package application

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status of a single application row.
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Both decided states are final for the row.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Approved
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Approved:      "approved",
		Rejected:      "rejected",
	}
}

func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if name == s && st != UnknownStatus {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Rejected {
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

// IsDecided reports whether an administrator has already ruled on the row.
func (s Status) IsDecided() bool {
	return s == Approved || s == Rejected
}

// Decision is the administrator's ruling on a pending application.
type Decision int

const (
	UnknownDecision Decision = iota
	Approve
	Reject
)

func ParseDecision(s string) (Decision, error) {
	switch s {
	case "approve":
		return Approve, nil
	case "reject":
		return Reject, nil
	default:
		return UnknownDecision, errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is not approve or reject", s))
	}
}

func (d Decision) Validate() error {
	if d != Approve && d != Reject {
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%d is not a valid decision", d))
	}
	return nil
}

func (d Decision) String() string {
	switch d {
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// outcome is the status a decision moves the application to.
func (d Decision) outcome() Status {
	if d == Approve {
		return Approved
	}
	return Rejected
}
