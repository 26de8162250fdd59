// Package account models the account record read by the approval gate on
// every seller and delivery-partner request.
//
// An account carries one role and one tri-state approval status. Sellers and
// delivery partners start pending and are moved to approved or rejected by the
// application review workflow; buyers and administrators are approved from
// the start. Accounts are never deleted: a rejection keeps the record with the
// reason supplied by the administrator.
package account
