package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
)

// getPendingSellerSections lists what a seller may open before approval.
func getPendingSellerSections() map[string]struct{} {
	return map[string]struct{}{
		"dashboard": {},
		"profile":   {},
		"settings":  {},
	}
}

// ApprovalGate authorizes access to role-scoped sections from the account's
// current approval status. It never authenticates.
type ApprovalGate struct{}

func NewApprovalGate() ApprovalGate {
	return ApprovalGate{}
}

// CanAccess returns nil when acc may open section under the required role.
//
// Denials, in the order they are checked:
//   - no account: ErrNotAuthenticated
//   - role differs from required: ErrRoleMismatch
//   - seller not approved, section outside dashboard/profile/settings: ErrPendingApproval
//   - delivery partner not approved: ErrPendingApproval
func (g ApprovalGate) CanAccess(acc *account.Account, required account.Role, section string) error {
	if acc == nil || acc.Validate() != nil {
		return errs.NewRuleViolationError(errs.ErrNotAuthenticated, "no account in session")
	}
	if acc.Role() != required {
		return errs.NewRuleViolationError(
			errs.ErrRoleMismatch,
			fmt.Sprintf("%s section requires role %s, account is %s", section, required, acc.Role()),
		)
	}
	if !required.RequiresApproval() || acc.IsApproved() {
		return nil
	}

	if required == account.Seller {
		if _, ok := getPendingSellerSections()[section]; ok {
			return nil
		}
	}
	return errs.NewRuleViolationError(
		errs.ErrPendingApproval,
		fmt.Sprintf("account %s is %s", acc.ID(), acc.ApprovalStatus()),
	)
}
