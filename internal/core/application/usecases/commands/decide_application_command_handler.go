package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/application"
)

// DecideApplicationCommandHandler runs the application review workflow.
//
// The application row and the owning account row are both written in one
// transaction. If either write fails, neither is kept.
//
// Example:
//
//	cmd, _ := NewDecideApplicationCommand(appID, application.Reject, adminID, "documents unreadable")
//	app, err := handler.Handle(ctx, cmd)
//	switch errs.CodeOf(err) {
//	case errs.CodeAlreadyReviewed:
//	    // someone else decided first
//	case errs.CodeMissingReason:
//	    // ask the admin for notes
//	}
type DecideApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewDecideApplicationCommandHandler(uowFactory ApplicationUoWFactory) DecideApplicationCommandHandler {
	return DecideApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DecideApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd DecideApplicationCommand,
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

	appRepo := uow.ApplicationRepository()
	app, err := appRepo.GetForUpdate(ctx, cmd.ApplicationID())
	if err != nil {
		return nil, err
	}

	if err = app.Decide(cmd.Decision(), cmd.AdminID(), cmd.Notes(), time.Now()); err != nil {
		return nil, err
	}

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.GetForUpdate(ctx, app.UserID())
	if err != nil {
		return nil, err
	}

	if app.Status() == application.Approved {
		acc.Approve()
	} else if err = acc.Reject(cmd.Notes()); err != nil {
		return nil, err
	}

	if err = appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
