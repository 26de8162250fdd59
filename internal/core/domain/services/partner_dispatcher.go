package services

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when none of the candidates can take the delivery.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerDispatcher selects a delivery partner for a pending delivery and
// assigns it.
//
// Selection rules:
//   - candidates must be verified and flagged available
//   - the highest rating wins; ties go to more completed deliveries
//   - remaining ties keep the first candidate
//
// Example usage:
//
//	dispatcher := services.NewPartnerDispatcher()
//	chosen, err := dispatcher.Dispatch(d, candidates, time.Now())
//	if errors.Is(err, services.ErrPartnerNotFound) {
//	    // leave the delivery pending for the next run
//	}
type PartnerDispatcher struct{}

func NewPartnerDispatcher() PartnerDispatcher {
	return PartnerDispatcher{}
}

// Dispatch assigns d to the best candidate and returns that candidate.
func (p PartnerDispatcher) Dispatch(
	d *delivery.Delivery,
	candidates []*partner.Partner,
	at time.Time,
) (*partner.Partner, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := d.CanAssign(); err != nil {
		return nil, err
	}

	best, err := p.findBestPartner(candidates)
	if err != nil {
		return nil, err
	}

	if err = d.AssignPartner(best.ID(), at); err != nil {
		return nil, err
	}
	return best, nil
}

func (p PartnerDispatcher) findBestPartner(candidates []*partner.Partner) (*partner.Partner, error) {
	var best *partner.Partner
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAssignable() {
			continue
		}
		if c.Outranks(best) {
			best = c
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}
	return best, nil
}
