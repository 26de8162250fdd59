package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrAutoAssignCommandIsNotConstructed = errors.New(
	"AutoAssignCommand must be created via NewAutoAssignCommand constructor",
)

// AutoAssignCommand triggers one automatic assignment round. It carries no
// data; the oldest pending delivery is picked by the handler.
type AutoAssignCommand struct {
	guard guard.ConstructorGuard
}

func NewAutoAssignCommand() AutoAssignCommand {
	return AutoAssignCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCommandIsNotConstructed)
}
