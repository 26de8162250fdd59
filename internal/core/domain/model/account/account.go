package account

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was not built via NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account is the record the approval gate reads. Only the application review
// workflow (or a direct admin action) changes its approval status.
type Account struct {
	id              kernel.AccountID
	role            Role
	approvalStatus  ApprovalStatus
	rejectionReason string

	// version guards concurrent updates; bumped by the repository on save
	version int

	isConstructed bool
}

// NewAccount registers a fresh account. Sellers and delivery partners start
// pending; buyers and administrators are approved implicitly.
func NewAccount(id kernel.AccountID, role Role) (*Account, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	status := Approved
	if role.RequiresApproval() {
		status = Pending
	}

	return &Account{
		id:             id,
		role:           role,
		approvalStatus: status,
		isConstructed:  true,
	}, nil
}

// RestoreAccount rebuilds an account loaded from storage.
func RestoreAccount(
	id kernel.AccountID,
	role Role,
	status ApprovalStatus,
	rejectionReason string,
	version int,
) (*Account, error) {
	if err := errors.Join(id.Validate(), role.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Account{
		id:              id,
		role:            role,
		approvalStatus:  status,
		rejectionReason: rejectionReason,
		version:         version,
		isConstructed:   true,
	}, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.AccountID {
	return a.id
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) ApprovalStatus() ApprovalStatus {
	return a.approvalStatus
}

func (a *Account) RejectionReason() string {
	return a.rejectionReason
}

func (a *Account) Version() int {
	return a.version
}

// IsApproved and IsRejected expose the legacy flag view for screens.
func (a *Account) IsApproved() bool {
	return a.approvalStatus == Approved
}

func (a *Account) IsRejected() bool {
	return a.approvalStatus == Rejected
}

// Approve grants the capabilities of the account's role and clears any
// previous rejection reason.
func (a *Account) Approve() {
	a.approvalStatus = Approved
	a.rejectionReason = ""
}

// Reject withdraws the capabilities and stores reason verbatim.
func (a *Account) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewRuleViolationError(errs.ErrMissingReason, "rejection needs a reason")
	}
	a.approvalStatus = Rejected
	a.rejectionReason = reason
	return nil
}
