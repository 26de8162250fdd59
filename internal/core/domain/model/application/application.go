package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrApplicationIsNotConstructed is returned when an Application was not built via NewApplication or RestoreApplication.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")
)

// Application is one submission by a prospective seller or delivery partner.
//
// Invariants:
//   - pending rows have no reviewer and no review time
//   - decided rows have both, set in the same call
//   - a decided row is never decided again
type Application struct {
	kernel.EventRecorder

	id          kernel.UUID
	userID      kernel.AccountID
	kind        Kind
	details     Details
	status      Status
	adminNotes  string
	reviewedBy  *kernel.AccountID
	reviewedAt  *time.Time
	submittedAt time.Time

	version int

	isConstructed bool
}

// NewApplication records a fresh pending submission.
func NewApplication(
	id kernel.UUID,
	userID kernel.AccountID,
	kind Kind,
	details Details,
	submittedAt time.Time,
) (*Application, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if err := details.validateFor(kind); err != nil {
		return nil, err
	}

	a := &Application{
		id:            id,
		userID:        userID,
		kind:          kind,
		details:       details,
		status:        Pending,
		submittedAt:   submittedAt.UTC(),
		isConstructed: true,
	}
	a.Raise(Submitted{
		ApplicationID: id.String(),
		UserID:        userID.Int64(),
		Kind:          kind.String(),
		At:            a.submittedAt,
	})
	return a, nil
}

// RestoreApplication rebuilds an application loaded from storage and rejects
// rows whose review fields disagree with their status.
func RestoreApplication(
	id kernel.UUID,
	userID kernel.AccountID,
	kind Kind,
	details Details,
	status Status,
	adminNotes string,
	reviewedBy *kernel.AccountID,
	reviewedAt *time.Time,
	submittedAt time.Time,
	version int,
) (*Application, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), kind.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	reviewed := reviewedBy != nil && reviewedAt != nil
	unreviewed := reviewedBy == nil && reviewedAt == nil
	if (status == Pending && !unreviewed) || (status.IsDecided() && !reviewed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"review fields",
			fmt.Errorf("%s application has inconsistent reviewer fields", status),
		)
	}

	return &Application{
		id:            id,
		userID:        userID,
		kind:          kind,
		details:       details,
		status:        status,
		adminNotes:    adminNotes,
		reviewedBy:    reviewedBy,
		reviewedAt:    reviewedAt,
		submittedAt:   submittedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

func (a *Application) ID() kernel.UUID {
	return a.id
}

func (a *Application) UserID() kernel.AccountID {
	return a.userID
}

func (a *Application) Kind() Kind {
	return a.kind
}

func (a *Application) Details() Details {
	return a.details
}

func (a *Application) Status() Status {
	return a.status
}

func (a *Application) AdminNotes() string {
	return a.adminNotes
}

func (a *Application) ReviewedBy() *kernel.AccountID {
	return a.reviewedBy
}

func (a *Application) ReviewedAt() *time.Time {
	return a.reviewedAt
}

func (a *Application) SubmittedAt() time.Time {
	return a.submittedAt
}

func (a *Application) Version() int {
	return a.version
}

// Decide applies an administrator's ruling.
//
// Checks run in this order:
//   - the row must still be pending (ErrAlreadyReviewed)
//   - a rejection must carry notes (ErrMissingReason)
func (a *Application) Decide(decision Decision, adminID kernel.AccountID, notes string, at time.Time) error {
	if err := errors.Join(decision.Validate(), adminID.Validate()); err != nil {
		return err
	}
	if a.status != Pending {
		return errs.NewRuleViolationError(
			errs.ErrAlreadyReviewed,
			fmt.Sprintf("application %s is already %s", a.id, a.status),
		)
	}
	if decision == Reject && strings.TrimSpace(notes) == "" {
		return errs.NewRuleViolationError(errs.ErrMissingReason, "rejection needs admin notes")
	}

	reviewedBy := adminID
	reviewedAt := at.UTC()

	a.status = decision.outcome()
	a.adminNotes = notes
	a.reviewedBy = &reviewedBy
	a.reviewedAt = &reviewedAt

	a.Raise(Reviewed{
		ApplicationID: a.id.String(),
		UserID:        a.userID.Int64(),
		Kind:          a.kind.String(),
		Status:        a.status.String(),
		ReviewedBy:    adminID.Int64(),
		Notes:         notes,
		At:            reviewedAt,
	})
	return nil
}
