// Package cancellation holds the single cancellation rule shared by the order
// lifecycle and the delivery workflow. Buyer-facing and seller-facing entry
// points both consult it, so the two surfaces can never disagree.
package cancellation

// Kind names the entity a cancel request targets.
type Kind int

const (
	Order Kind = iota + 1
	Delivery
)

func (k Kind) String() string {
	switch k {
	case Order:
		return "order"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// CanCancel reports whether an entity of the given kind in status may be
// cancelled now. Statuses are the persisted lowercase names.
//
//   - Order: pending or confirmed. Processing is excluded on every surface.
//   - Delivery: anything except delivered and cancelled.
func CanCancel(status string, kind Kind) bool {
	switch kind {
	case Order:
		return status == "pending" || status == "confirmed"
	case Delivery:
		return status != "" && status != "delivered" && status != "cancelled"
	default:
		return false
	}
}
