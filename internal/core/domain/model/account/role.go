package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the single role an account acts under.
type Role int

const (
	UnknownRole Role = iota
	Buyer
	Seller
	DeliveryPartner
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:     "unknown",
		Buyer:           "buyer",
		Seller:          "seller",
		DeliveryPartner: "delivery_partner",
		Admin:           "admin",
	}
}

// ParseRole maps the persisted/wire name back to a Role.
func ParseRole(s string) (Role, error) {
	for r, name := range getRoleStrings() {
		if name == s && r != UnknownRole {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r < Buyer || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// RequiresApproval reports whether accounts with this role go through review.
func (r Role) RequiresApproval() bool {
	return r == Seller || r == DeliveryPartner
}
