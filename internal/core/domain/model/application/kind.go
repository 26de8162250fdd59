package application

import (
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
)

// Kind tells which capability an application asks for.
type Kind int

const (
	UnknownKind Kind = iota
	SellerKind
	DeliveryPartnerKind
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:         "unknown",
		SellerKind:          "seller",
		DeliveryPartnerKind: "delivery_partner",
	}
}

func ParseKind(s string) (Kind, error) {
	for k, name := range getKindStrings() {
		if name == s && k != UnknownKind {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid application kind", s))
}

func (k Kind) Validate() error {
	if k != SellerKind && k != DeliveryPartnerKind {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid application kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Role is the account role this kind of application grants.
func (k Kind) Role() account.Role {
	switch k {
	case SellerKind:
		return account.Seller
	case DeliveryPartnerKind:
		return account.DeliveryPartner
	default:
		return account.UnknownRole
	}
}
