// Package orderrepo maps order aggregates to the orders and order_items tables.
// Items are written once with their order and never rewritten afterwards.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns are numeric(12,2); statuses are stored by name.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID        int64           `gorm:"not null;index"`
	SellerID       int64           `gorm:"not null;index"`
	AddressID      int64           `gorm:"not null"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status         string          `gorm:"size:16;not null;index"`
	PaymentStatus  string          `gorm:"size:16;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	Version        int             `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line of an order with the unit price captured at checkout.
type ItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID int64           `gorm:"not null"`
	VariantID *int64
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: item.ProductID(),
			VariantID: item.VariantID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		BuyerID:        o.BuyerID().Int64(),
		SellerID:       o.SellerID().Int64(),
		AddressID:      o.AddressID(),
		Items:          items,
		TotalAmount:    o.TotalAmount().Decimal(),
		DiscountAmount: o.DiscountAmount().Decimal(),
		FinalAmount:    o.FinalAmount().Decimal(),
		Status:         o.Status().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		Version:        o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.VariantID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}
	final, err := kernel.NewMoney(dto.FinalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		kernel.AccountID(dto.BuyerID),
		kernel.AccountID(dto.SellerID),
		dto.AddressID,
		items,
		total,
		discount,
		final,
		status,
		paymentStatus,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
