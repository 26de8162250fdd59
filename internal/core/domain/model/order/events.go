package order

import "time"

type Placed struct {
	OrderID     string    `json:"orderId"`
	BuyerID     int64     `json:"buyerId"`
	SellerID    int64     `json:"sellerId"`
	FinalAmount string    `json:"finalAmount"`
	At          time.Time `json:"at"`
}

func (e Placed) EventName() string     { return "order.placed" }
func (e Placed) AggregateID() string   { return e.OrderID }
func (e Placed) OccurredAt() time.Time { return e.At }

type StatusChanged struct {
	OrderID string    `json:"orderId"`
	BuyerID int64     `json:"buyerId"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Actor   string    `json:"actor"`
	At      time.Time `json:"at"`
}

func (e StatusChanged) EventName() string     { return "order.status_changed" }
func (e StatusChanged) AggregateID() string   { return e.OrderID }
func (e StatusChanged) OccurredAt() time.Time { return e.At }
