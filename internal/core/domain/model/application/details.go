package application

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Details is the profile submitted with an application. Document entries are
// references to files held by the upload service, not the files themselves.
type Details struct {
	BusinessName  string
	Documents     []string
	ContactNumber string
	VehicleType   string
	Address       string
}

func (d Details) validateFor(kind Kind) error {
	var errList []error
	if strings.TrimSpace(d.ContactNumber) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("contact number"))
	}
	if len(d.Documents) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("documents"))
	}
	switch kind {
	case SellerKind:
		if strings.TrimSpace(d.BusinessName) == "" {
			errList = append(errList, errs.NewValueIsRequiredError("business name"))
		}
	case DeliveryPartnerKind:
		if strings.TrimSpace(d.VehicleType) == "" {
			errList = append(errList, errs.NewValueIsRequiredError("vehicle type"))
		}
	}
	return errors.Join(errList...)
}
