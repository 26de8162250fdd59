package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type OrderResponse struct {
	ID             string              `json:"id"`
	BuyerID        int64               `json:"buyerId"`
	SellerID       int64               `json:"sellerId"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"paymentStatus"`
	TotalAmount    string              `json:"totalAmount"`
	DiscountAmount string              `json:"discountAmount"`
	FinalAmount    string              `json:"finalAmount"`
	Items          []OrderItemResponse `json:"items"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID(),
			VariantID: it.VariantID(),
			Quantity:  it.Quantity(),
			UnitPrice: it.UnitPrice().String(),
		})
	}
	return OrderResponse{
		ID:             o.ID().String(),
		BuyerID:        o.BuyerID().Int64(),
		SellerID:       o.SellerID().Int64(),
		Status:         o.Status().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		TotalAmount:    o.TotalAmount().String(),
		DiscountAmount: o.DiscountAmount().String(),
		FinalAmount:    o.FinalAmount().String(),
		Items:          items,
		UpdatedAt:      o.UpdatedAt(),
	}
}

type DeliveryResponse struct {
	ID                 string `json:"id"`
	OrderID            string `json:"orderId"`
	Status             string `json:"status"`
	PartnerID          *int64 `json:"partnerId"`
	Fee                string `json:"fee"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

func newDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:                 d.ID().String(),
		OrderID:            d.OrderID().String(),
		Status:             d.Status().String(),
		PartnerID:          accountIDPtr(d.PartnerID()),
		Fee:                d.Fee().String(),
		CancellationReason: d.CancellationReason(),
	}
}

type ApplicationResponse struct {
	ID          string     `json:"id"`
	UserID      int64      `json:"userId"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	AdminNotes  string     `json:"adminNotes,omitempty"`
	ReviewedBy  *int64     `json:"reviewedBy"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
	SubmittedAt time.Time  `json:"submittedAt"`
}

func newApplicationResponse(a *application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID().String(),
		UserID:      a.UserID().Int64(),
		Kind:        a.Kind().String(),
		Status:      a.Status().String(),
		AdminNotes:  a.AdminNotes(),
		ReviewedBy:  accountIDPtr(a.ReviewedBy()),
		ReviewedAt:  a.ReviewedAt(),
		SubmittedAt: a.SubmittedAt(),
	}
}

type FulfillmentResponse struct {
	OrderID       string                       `json:"orderId"`
	Status        string                       `json:"status"`
	PaymentStatus string                       `json:"paymentStatus"`
	FinalAmount   string                       `json:"finalAmount"`
	Cancellable   bool                         `json:"cancellable"`
	Delivery      *FulfillmentDeliveryResponse `json:"delivery"`
}

type FulfillmentDeliveryResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	PartnerID   *int64 `json:"partnerId"`
	Cancellable bool   `json:"cancellable"`
}

func newFulfillmentResponse(v *queries.GetOrderFulfillmentQueryResponse) FulfillmentResponse {
	resp := FulfillmentResponse{
		OrderID:       v.OrderID.String(),
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		FinalAmount:   v.FinalAmount.StringFixed(2),
		Cancellable:   v.Cancellable,
	}
	if v.Delivery != nil {
		resp.Delivery = &FulfillmentDeliveryResponse{
			ID:          v.Delivery.ID.String(),
			Status:      v.Delivery.Status,
			PartnerID:   accountIDPtr(v.Delivery.PartnerID),
			Cancellable: v.Delivery.Cancellable,
		}
	}
	return resp
}

func accountIDPtr(id *kernel.AccountID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
