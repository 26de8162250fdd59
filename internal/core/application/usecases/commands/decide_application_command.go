package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDecideApplicationCommandIsNotConstructed = errors.New(
	"DecideApplicationCommand must be created via NewDecideApplicationCommand constructor",
)

// DecideApplicationCommand carries an administrator's ruling on one application.
// Notes are optional for approvals and required for rejections; the latter is
// enforced by the aggregate so the check order stays NOT_FOUND, ALREADY_REVIEWED,
// MISSING_REASON.
type DecideApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	decision      application.Decision
	adminID       kernel.AccountID
	notes         string

	guard guard.ConstructorGuard
}

func NewDecideApplicationCommand(
	applicationID kernel.UUID,
	decision application.Decision,
	adminID kernel.AccountID,
	notes string,
) (DecideApplicationCommand, error) {
	if err := errors.Join(applicationID.Validate(), decision.Validate(), adminID.Validate()); err != nil {
		return DecideApplicationCommand{}, err
	}

	return DecideApplicationCommand{
		applicationID: applicationID,
		decision:      decision,
		adminID:       adminID,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DecideApplicationCommand) Validate() error {
	return c.guard.Validate(ErrDecideApplicationCommandIsNotConstructed)
}

func (c DecideApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c DecideApplicationCommand) Decision() application.Decision {
	return c.decision
}

func (c DecideApplicationCommand) AdminID() kernel.AccountID {
	return c.adminID
}

func (c DecideApplicationCommand) Notes() string {
	return c.notes
}
