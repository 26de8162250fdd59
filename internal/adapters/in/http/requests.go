package http

import (
	"strings"

	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type CreateOrderRequest struct {
	SellerID  int64              `json:"sellerId"  validate:"required,gt=0"`
	AddressID int64              `json:"addressId" validate:"required,gt=0"`
	Items     []OrderItemRequest `json:"items"     validate:"required,min=1,dive"`
	Discount  string             `json:"discount"  validate:"omitempty,numeric"`
}

type OrderItemRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	VariantID *int64 `json:"variantId" validate:"omitempty,gt=0"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
	UnitPrice string `json:"unitPrice" validate:"required,numeric"`
}

func (r CreateOrderRequest) toDomain() ([]order.Item, kernel.Money, error) {
	items := make([]order.Item, 0, len(r.Items))
	for _, it := range r.Items {
		price, err := kernel.MoneyFromString(it.UnitPrice)
		if err != nil {
			return nil, kernel.Money{}, err
		}
		item, err := order.NewItem(it.ProductID, it.VariantID, it.Quantity, price)
		if err != nil {
			return nil, kernel.Money{}, err
		}
		items = append(items, item)
	}

	discount := kernel.ZeroMoney()
	if r.Discount != "" {
		d, err := kernel.MoneyFromString(r.Discount)
		if err != nil {
			return nil, kernel.Money{}, err
		}
		discount = d
	}
	return items, discount, nil
}

type TransitionOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

type AddressSnapshotRequest struct {
	ContactName  string `json:"contactName"  validate:"required,max=128"`
	Phone        string `json:"phone"        validate:"required,max=32"`
	AddressLine1 string `json:"addressLine1" validate:"required,max=255"`
	AddressLine2 string `json:"addressLine2" validate:"max=255"`
	City         string `json:"city"         validate:"required,max=128"`
	PostalCode   string `json:"postalCode"   validate:"max=16"`
}

func (r AddressSnapshotRequest) toDomain() delivery.Snapshot {
	return delivery.Snapshot{
		ContactName:  strings.TrimSpace(r.ContactName),
		Phone:        strings.TrimSpace(r.Phone),
		AddressLine1: strings.TrimSpace(r.AddressLine1),
		AddressLine2: strings.TrimSpace(r.AddressLine2),
		City:         strings.TrimSpace(r.City),
		PostalCode:   strings.TrimSpace(r.PostalCode),
	}
}

type CreateDeliveryRequest struct {
	Pickup AddressSnapshotRequest `json:"pickup" validate:"required"`
	Drop   AddressSnapshotRequest `json:"drop"   validate:"required"`
	Fee    string                 `json:"fee"    validate:"omitempty,numeric"`
}

type AssignPartnerRequest struct {
	PartnerID int64 `json:"partnerId" validate:"required,gt=0"`
}

type CancelDeliveryRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type AdvanceDeliveryRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress picked_up out_for_delivery delivered"`
}

type SubmitApplicationRequest struct {
	Kind          string   `json:"kind"          validate:"required,oneof=seller delivery_partner"`
	BusinessName  string   `json:"businessName"  validate:"max=255"`
	Documents     []string `json:"documents"     validate:"required,min=1,dive,required"`
	ContactNumber string   `json:"contactNumber" validate:"required,max=32"`
	VehicleType   string   `json:"vehicleType"   validate:"max=32"`
	Address       string   `json:"address"       validate:"max=500"`
}

func (r SubmitApplicationRequest) details() application.Details {
	return application.Details{
		BusinessName:  strings.TrimSpace(r.BusinessName),
		Documents:     r.Documents,
		ContactNumber: strings.TrimSpace(r.ContactNumber),
		VehicleType:   strings.TrimSpace(r.VehicleType),
		Address:       strings.TrimSpace(r.Address),
	}
}

type DecideApplicationRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Notes    string `json:"notes"    validate:"max=2000"`
}
