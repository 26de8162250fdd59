// Package deliveryrepo maps delivery aggregates to the deliveries table.
// Pickup and drop addresses are copied into the row, so later edits to an
// address book never change a delivery in flight.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO is one delivery row. The partial unique index on order_id
// allows any number of cancelled deliveries but only one active one.
type DeliveryDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_deliveries_active_order,where:status <> 'cancelled'"`
	Pickup             SnapshotDTO     `gorm:"embedded;embeddedPrefix:pickup_"`
	Drop               SnapshotDTO     `gorm:"embedded;embeddedPrefix:drop_"`
	Fee                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PartnerID          *int64          `gorm:"index"`
	Status             string          `gorm:"size:24;not null;index"`
	CancellationReason string          `gorm:"type:text"`
	CreatedAt          time.Time       `gorm:"not null;index"`
	UpdatedAt          time.Time       `gorm:"not null"`
	Version            int             `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// SnapshotDTO is the embedded copy of a contact address.
type SnapshotDTO struct {
	ContactName  string `gorm:"size:128"`
	Phone        string `gorm:"size:32"`
	AddressLine1 string `gorm:"size:255"`
	AddressLine2 string `gorm:"size:255"`
	City         string `gorm:"size:128"`
	PostalCode   string `gorm:"size:16"`
}

func snapshotFromDomain(s delivery.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		ContactName:  s.ContactName,
		Phone:        s.Phone,
		AddressLine1: s.AddressLine1,
		AddressLine2: s.AddressLine2,
		City:         s.City,
		PostalCode:   s.PostalCode,
	}
}

func (dto SnapshotDTO) toDomain() delivery.Snapshot {
	return delivery.Snapshot{
		ContactName:  dto.ContactName,
		Phone:        dto.Phone,
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		City:         dto.City,
		PostalCode:   dto.PostalCode,
	}
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var partnerID *int64
	if id := d.PartnerID(); id != nil {
		raw := id.Int64()
		partnerID = &raw
	}
	return DeliveryDTO{
		ID:                 d.ID().Bytes(),
		OrderID:            d.OrderID().Bytes(),
		Pickup:             snapshotFromDomain(d.Pickup()),
		Drop:               snapshotFromDomain(d.Drop()),
		Fee:                d.Fee().Decimal(),
		PartnerID:          partnerID,
		Status:             d.Status().String(),
		CancellationReason: d.CancellationReason(),
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
		Version:            d.Version(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.AccountID
	if dto.PartnerID != nil {
		pid := kernel.AccountID(*dto.PartnerID)
		partnerID = &pid
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		dto.Pickup.toDomain(),
		dto.Drop.toDomain(),
		fee,
		partnerID,
		status,
		dto.CancellationReason,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
