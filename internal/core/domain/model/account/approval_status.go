package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ApprovalStatus replaces the legacy isApproved/rejected flag pair, so an
// account can never be approved and rejected at once.
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Either decided state can be replaced by the next decided application.
type ApprovalStatus int

const (
	UnknownApproval ApprovalStatus = iota
	Pending
	Approved
	Rejected
)

func getApprovalStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		UnknownApproval: "unknown",
		Pending:         "pending",
		Approved:        "approved",
		Rejected:        "rejected",
	}
}

func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	for st, name := range getApprovalStrings() {
		if name == s && st != UnknownApproval {
			return st, nil
		}
	}
	return UnknownApproval, errs.NewValueIsInvalidErrorWithCause(
		"approval status",
		fmt.Errorf("%q is not a valid approval status", s),
	)
}

func (s ApprovalStatus) Validate() error {
	if s < Pending || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("approval status", fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStrings()[s]; ok {
		return str
	}
	return "unknown"
}
