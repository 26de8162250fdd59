package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/partner"
)

// PartnerAvailability answers whether a partner can take a delivery right now:
// verified, flagged available and not carrying another active delivery.
type PartnerAvailability interface {
	IsAssignable(ctx context.Context, partnerID kernel.AccountID) (bool, error)
}

// PartnerRepository reads delivery partner profiles. Profiles are written by the
// partner-facing subsystem, never by this core.
type PartnerRepository interface {
	PartnerAvailability

	Get(ctx context.Context, id kernel.AccountID) (*partner.Partner, error)

	// GetAllAssignable returns every partner for which IsAssignable would be true.
	GetAllAssignable(ctx context.Context) ([]*partner.Partner, error)
}
