package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// SubmitApplicationCommandHandler appends a new pending application to the log.
//
// The account row is locked first so two concurrent submissions by the same
// user serialize, and the second one sees the first as pending.
type SubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewSubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ErrRoleMismatch when the account's role differs from the
// application kind, ErrAlreadyReviewed when the account is already approved and
// ErrPendingApproval when an earlier application is still undecided.
func (h SubmitApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitApplicationCommand,
) (*application.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetForUpdate(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if acc.Role() != cmd.Kind().Role() {
		return nil, errs.NewRuleViolationError(
			errs.ErrRoleMismatch,
			fmt.Sprintf("%s account cannot apply as %s", acc.Role(), cmd.Kind()),
		)
	}
	if acc.IsApproved() {
		return nil, errs.NewRuleViolationError(
			errs.ErrAlreadyReviewed,
			fmt.Sprintf("account %s is already approved", acc.ID()),
		)
	}

	appRepo := uow.ApplicationRepository()
	pending, err := appRepo.HasPending(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, errs.NewRuleViolationError(
			errs.ErrPendingApproval,
			fmt.Sprintf("account %s already has an application under review", acc.ID()),
		)
	}

	app, err := application.NewApplication(kernel.NewUUID(), cmd.UserID(), cmd.Kind(), cmd.Details(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = appRepo.Add(ctx, app); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
