// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - UUID: identifier of the aggregates owned by this core (orders, deliveries, applications)
//   - AccountID: numeric identity of buyers, sellers, delivery partners and administrators
//   - Money: non-negative decimal amount used for order totals and delivery fees
//
// Values are immutable and safe for concurrent use.
package kernel
