package delivery

import "time"

type Created struct {
	DeliveryID string    `json:"deliveryId"`
	OrderID    string    `json:"orderId"`
	Fee        string    `json:"fee"`
	At         time.Time `json:"at"`
}

func (e Created) EventName() string     { return "delivery.created" }
func (e Created) AggregateID() string   { return e.DeliveryID }
func (e Created) OccurredAt() time.Time { return e.At }

// PartnerAssigned is raised by both assignment and reassignment. PreviousPartnerID
// is zero for a first assignment.
type PartnerAssigned struct {
	DeliveryID        string    `json:"deliveryId"`
	OrderID           string    `json:"orderId"`
	PartnerID         int64     `json:"partnerId"`
	PreviousPartnerID int64     `json:"previousPartnerId,omitempty"`
	At                time.Time `json:"at"`
}

func (e PartnerAssigned) EventName() string {
	if e.PreviousPartnerID != 0 {
		return "delivery.partner_reassigned"
	}
	return "delivery.partner_assigned"
}
func (e PartnerAssigned) AggregateID() string   { return e.DeliveryID }
func (e PartnerAssigned) OccurredAt() time.Time { return e.At }

type StatusChanged struct {
	DeliveryID string    `json:"deliveryId"`
	OrderID    string    `json:"orderId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Reason     string    `json:"reason,omitempty"`
	At         time.Time `json:"at"`
}

func (e StatusChanged) EventName() string     { return "delivery.status_changed" }
func (e StatusChanged) AggregateID() string   { return e.DeliveryID }
func (e StatusChanged) OccurredAt() time.Time { return e.At }
