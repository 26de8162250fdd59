package kernel

import (
	"fmt"
	"strconv"

	"marketplace/internal/pkg/errs"
)

// AccountID is the numeric identity issued by the account/session layer.
// Buyers, sellers, delivery partners and administrators all share this space.
type AccountID int64

// ErrAccountIDIsInvalid is returned for zero or negative account ids.
var ErrAccountIDIsInvalid = errs.NewValueIsInvalidError("account id must be positive")

// AccountIDFromString parses an id taken from a token subject or a path segment.
func AccountIDFromString(s string) (AccountID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("account id", fmt.Errorf("%q is not a number", s))
	}
	id := AccountID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

func (id AccountID) Validate() error {
	if id <= 0 {
		return ErrAccountIDIsInvalid
	}
	return nil
}

func (id AccountID) Int64() int64 {
	return int64(id)
}

func (id AccountID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
