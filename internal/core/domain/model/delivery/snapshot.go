package delivery

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Snapshot is an address and contact copied at delivery creation. Later edits
// to the address book do not reach it.
type Snapshot struct {
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
}

func (s Snapshot) Validate(param string) error {
	var errList []error
	required := []struct {
		name  string
		value string
	}{
		{"contact name", s.ContactName},
		{"phone", s.Phone},
		{"address line", s.AddressLine1},
		{"city", s.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(param+" "+r.name))
		}
	}
	return errors.Join(errList...)
}
