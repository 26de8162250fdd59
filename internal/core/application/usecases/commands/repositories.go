// Package commands contains business operations that modify system state.
// Every handler validates its command, opens one unit of work, and either
// commits every write it made or none of them.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ApplicationUoW spans the application log and the account record, which
	// a review decision must update together.
	ApplicationUoW interface {
		TxManager
		AccountRepoFactory
		ApplicationRepoFactory
	}

	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// OrderUoW covers order placement and lifecycle transitions.
	OrderUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW covers the delivery assignment workflow.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().GetForUpdate(ctx, id)
	//   ok, err := uow.PartnerRepository().IsAssignable(ctx, partnerID)
	//   // ... mutate and update
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		PartnerRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// OutboxUoW is used by the relay that hands stored events to the notifier.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
