package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand asks for seller or delivery partner capability.
type SubmitApplicationCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.AccountID
	kind    application.Kind
	details application.Details

	guard guard.ConstructorGuard
}

func NewSubmitApplicationCommand(
	userID kernel.AccountID,
	kind application.Kind,
	details application.Details,
) (SubmitApplicationCommand, error) {
	if err := errors.Join(userID.Validate(), kind.Validate()); err != nil {
		return SubmitApplicationCommand{}, err
	}

	return SubmitApplicationCommand{
		userID:  userID,
		kind:    kind,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

func (c SubmitApplicationCommand) UserID() kernel.AccountID {
	return c.userID
}

func (c SubmitApplicationCommand) Kind() application.Kind {
	return c.kind
}

func (c SubmitApplicationCommand) Details() application.Details {
	return c.details
}
