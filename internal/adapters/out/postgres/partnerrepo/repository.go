package partnerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
//
// A partner is assignable when the profile is verified, flagged available and
// the partner holds no delivery between assigned and out_for_delivery.
type GormPartnerRepository struct {
	db *gorm.DB
}

func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func (r *GormPartnerRepository) IsAssignable(ctx context.Context, partnerID kernel.AccountID) (bool, error) {
	if err := partnerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.assignable(ctx).
		Where("delivery_partners.account_id = ?", partnerID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.AccountID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAssignable returns assignable partners best first.
func (r *GormPartnerRepository) GetAllAssignable(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	err := r.assignable(ctx).
		Order("rating DESC, completed_deliveries DESC, account_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *GormPartnerRepository) assignable(ctx context.Context) *gorm.DB {
	busy := r.db.Session(&gorm.Session{NewDB: true}).
		Table("deliveries").
		Select("1").
		Where("deliveries.partner_id = delivery_partners.account_id").
		Where("deliveries.status IN ?", busyStatuses())

	return r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("delivery_partners.is_verified AND delivery_partners.is_available").
		Where("NOT EXISTS (?)", busy)
}

// busyStatuses lists the delivery statuses that keep a partner occupied.
func busyStatuses() []string {
	return []string{
		delivery.Assigned.String(),
		delivery.InProgress.String(),
		delivery.PickedUp.String(),
		delivery.OutForDelivery.String(),
	}
}
