package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists orders together with their items.
type OrderRepository interface {
	// Add stores the order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status fields under the optimistic version guard.
	// Items are immutable after checkout and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// DeliveryRepository persists deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// HasActiveForOrder reports whether a non-cancelled delivery references the order.
	HasActiveForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetFirstPendingForUpdate locks the oldest pending delivery, skipping rows
	// locked by concurrent callers.
	GetFirstPendingForUpdate(ctx context.Context) (*delivery.Delivery, error)
}
