// Package partnerrepo reads delivery partner profiles and answers the
// availability question the assignment workflow asks.
package partnerrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/partner"
)

// PartnerDTO is one row of delivery_partners, keyed by the partner's account.
type PartnerDTO struct {
	AccountID           int64   `gorm:"primaryKey;autoIncrement:false"`
	IsVerified          bool    `gorm:"not null;default:false"`
	IsAvailable         bool    `gorm:"not null;default:false"`
	ContactNumber       string  `gorm:"size:32"`
	VehicleType         string  `gorm:"size:32"`
	Rating              float64 `gorm:"not null;default:0"`
	CompletedDeliveries int     `gorm:"not null;default:0"`
}

func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	return partner.RestorePartner(
		kernel.AccountID(dto.AccountID),
		dto.IsVerified,
		dto.IsAvailable,
		dto.ContactNumber,
		dto.VehicleType,
		dto.Rating,
		dto.CompletedDeliveries,
	)
}
