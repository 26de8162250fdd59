// Package ports defines the contracts between the core and its adapters:
// repositories, collaborators and the unit of work.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/kernel"
)

// AccountRepository persists the account record the approval gate reads.
type AccountRepository interface {
	Add(ctx context.Context, aggregate *account.Account) error

	// Update writes the account only if its stored version still matches;
	// otherwise it returns errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *account.Account) error

	Get(ctx context.Context, id kernel.AccountID) (*account.Account, error)

	// GetForUpdate loads the account and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.AccountID) (*account.Account, error)
}

// ApplicationRepository persists the append-only application log.
type ApplicationRepository interface {
	Add(ctx context.Context, aggregate *application.Application) error
	Update(ctx context.Context, aggregate *application.Application) error
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// HasPending reports whether the user already has an undecided application.
	HasPending(ctx context.Context, userID kernel.AccountID) (bool, error)
}
