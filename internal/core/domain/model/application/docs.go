// Package application models seller and delivery-partner applications.
//
// Applications form an append-only log per user: a rejected applicant retries
// by submitting a new row, and a decided row is never decided again. While an
// application is pending its review fields are empty; the decision sets status,
// notes, reviewer and review time together.
package application
