package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Domain events raised by
// aggregates saved through its repositories are written to the outbox on Commit,
// inside the same transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit flushes pending domain events and commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	AccountRepository() AccountRepository
	ApplicationRepository() ApplicationRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	PartnerRepository() PartnerRepository
	OutboxRepository() OutboxRepository
}
