// Package applicationrepo stores the append-only log of seller and delivery
// partner applications.
package applicationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO is one submitted application. The partial unique index keeps
// at most one pending row per user even under concurrent submissions.
type ApplicationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      int64      `gorm:"not null;index;uniqueIndex:ux_applications_pending_user,where:status = 'pending'"`
	Kind        string     `gorm:"size:32;not null"`
	Details     DetailsDTO `gorm:"type:jsonb;serializer:json;not null"`
	Status      string     `gorm:"size:16;not null;index"`
	AdminNotes  string     `gorm:"type:text"`
	ReviewedBy  *int64
	ReviewedAt  *time.Time
	SubmittedAt time.Time `gorm:"not null;index"`
	Version     int       `gorm:"not null"`
}

func (ApplicationDTO) TableName() string {
	return "applications"
}

// DetailsDTO is the JSON document kept in the details column.
type DetailsDTO struct {
	BusinessName  string   `json:"businessName,omitempty"`
	Documents     []string `json:"documents"`
	ContactNumber string   `json:"contactNumber"`
	VehicleType   string   `json:"vehicleType,omitempty"`
	Address       string   `json:"address,omitempty"`
}

func fromDomain(a *application.Application) ApplicationDTO {
	var reviewedBy *int64
	if id := a.ReviewedBy(); id != nil {
		raw := id.Int64()
		reviewedBy = &raw
	}
	d := a.Details()
	return ApplicationDTO{
		ID:     a.ID().Bytes(),
		UserID: a.UserID().Int64(),
		Kind:   a.Kind().String(),
		Details: DetailsDTO{
			BusinessName:  d.BusinessName,
			Documents:     d.Documents,
			ContactNumber: d.ContactNumber,
			VehicleType:   d.VehicleType,
			Address:       d.Address,
		},
		Status:      a.Status().String(),
		AdminNotes:  a.AdminNotes(),
		ReviewedBy:  reviewedBy,
		ReviewedAt:  a.ReviewedAt(),
		SubmittedAt: a.SubmittedAt(),
		Version:     a.Version(),
	}
}

func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	kind, err := application.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := application.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.AccountID
	if dto.ReviewedBy != nil {
		reviewer := kernel.AccountID(*dto.ReviewedBy)
		reviewedBy = &reviewer
	}

	return application.RestoreApplication(
		id,
		kernel.AccountID(dto.UserID),
		kind,
		application.Details{
			BusinessName:  dto.Details.BusinessName,
			Documents:     dto.Details.Documents,
			ContactNumber: dto.Details.ContactNumber,
			VehicleType:   dto.Details.VehicleType,
			Address:       dto.Details.Address,
		},
		status,
		dto.AdminNotes,
		reviewedBy,
		dto.ReviewedAt,
		dto.SubmittedAt,
		dto.Version,
	)
}
