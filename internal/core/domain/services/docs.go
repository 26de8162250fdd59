// Package services provides domain services whose decisions span more than one
// aggregate or read model.
//
// The package includes:
//   - ApprovalGate: decides whether an account may reach a role-scoped section
//   - PartnerDispatcher: picks the best available partner for a pending delivery
//
// Both are pure: they read the aggregates handed to them and never touch storage.
package services
