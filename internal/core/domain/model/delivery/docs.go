// Package delivery models the fulfillment record that tracks physical transport
// of a confirmed order. Its lifecycle runs beside the order's own status and
// never mutates it.
package delivery
