// Package partner holds the delivery partner read model. Partner profiles are
// owned by the partner-facing subsystem; this core only reads them.
package partner

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrPartnerIsNotConstructed = errors.New("Partner must be created via RestorePartner constructor")

const maxRating = 5.0

type Partner struct {
	id                  kernel.AccountID
	isVerified          bool
	isAvailable         bool
	contactNumber       string
	vehicleType         string
	rating              float64
	completedDeliveries int

	isConstructed bool
}

func RestorePartner(
	id kernel.AccountID,
	isVerified bool,
	isAvailable bool,
	contactNumber string,
	vehicleType string,
	rating float64,
	completedDeliveries int,
) (*Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if rating < 0 || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 0, maxRating)
	}
	if completedDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completed deliveries",
			fmt.Errorf("%d is negative", completedDeliveries),
		)
	}

	return &Partner{
		id:                  id,
		isVerified:          isVerified,
		isAvailable:         isAvailable,
		contactNumber:       contactNumber,
		vehicleType:         vehicleType,
		rating:              rating,
		completedDeliveries: completedDeliveries,
		isConstructed:       true,
	}, nil
}

func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

func (p *Partner) ID() kernel.AccountID     { return p.id }
func (p *Partner) IsVerified() bool         { return p.isVerified }
func (p *Partner) IsAvailable() bool        { return p.isAvailable }
func (p *Partner) ContactNumber() string    { return p.contactNumber }
func (p *Partner) VehicleType() string      { return p.vehicleType }
func (p *Partner) Rating() float64          { return p.rating }
func (p *Partner) CompletedDeliveries() int { return p.completedDeliveries }

// IsAssignable reports the profile half of assignability. Whether the partner
// already carries an active delivery is answered by storage.
func (p *Partner) IsAssignable() bool {
	return p.isVerified && p.isAvailable
}

// Outranks orders candidates for automatic assignment: higher rating first,
// then more completed deliveries.
func (p *Partner) Outranks(other *Partner) bool {
	if other == nil {
		return true
	}
	if p.rating != other.rating {
		return p.rating > other.rating
	}
	return p.completedDeliveries > other.completedDeliveries
}
