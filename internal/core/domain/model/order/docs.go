// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding buyer, seller, item snapshots, money totals and status
//   - Status: the lifecycle state machine with its fixed successor table
//   - PaymentStatus: tracked alongside but never changed by lifecycle transitions
//   - Item: a line of the order with the unit price captured at checkout
//
// Key business rules:
//   - Status only moves forward: Pending -> Confirmed -> Processing -> Shipped -> Delivered
//   - Pending, Confirmed and Processing may move to Cancelled; Shipped may not
//   - Delivered and Cancelled are terminal
//   - Buyers and sellers may only cancel while the cancellation policy allows it;
//     administrators follow the raw successor table
//   - Confirmation makes delivery creation legal but does not create a delivery
package order
