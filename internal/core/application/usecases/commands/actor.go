package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// Actor is the authenticated account on whose behalf a command runs. The HTTP
// layer builds it from the account the approval gate just admitted.
type Actor struct {
	id   kernel.AccountID
	role account.Role
}

func NewActor(id kernel.AccountID, role account.Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() kernel.AccountID {
	return a.id
}

func (a Actor) Role() account.Role {
	return a.role
}

func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
