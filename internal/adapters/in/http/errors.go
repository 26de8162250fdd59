package http

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusOf(code errs.Code) int {
	switch code {
	case errs.CodeNotFound:
		return http.StatusNotFound
	case errs.CodeNotAuthenticated:
		return http.StatusUnauthorized
	case errs.CodeRoleMismatch, errs.CodePendingApproval:
		return http.StatusForbidden
	case errs.CodeAlreadyReviewed,
		errs.CodeIllegalTransition,
		errs.CodeNotPending,
		errs.CodeTerminalState,
		errs.CodeOrderNotConfirmed,
		errs.CodeDeliveryAlreadyExists,
		errs.CodeConflict:
		return http.StatusConflict
	case errs.CodeMissingReason, errs.CodePartnerUnavailable:
		return http.StatusUnprocessableEntity
	case errs.CodeInvalidValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with the status its code maps to. Internal errors
// are logged and never echoed to the caller.
func writeError(c echo.Context, err error) error {
	code := errs.CodeOf(err)
	status := statusOf(code)

	message := err.Error()
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		message = "internal error"
	}
	return c.JSON(status, Error{Code: string(code), Message: message})
}

// describeValidation reduces validator output to its first failing field.
func describeValidation(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Errorf("field %s failed on %q", fe.Namespace(), fe.Tag())
	}
	return err
}

// HTTPErrorHandler renders errors that escape handlers, such as unknown
// routes or methods, in the same body shape as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := errs.CodeInternal
		switch he.Code {
		case http.StatusNotFound:
			code = errs.CodeNotFound
		case http.StatusUnauthorized:
			code = errs.CodeNotAuthenticated
		case http.StatusForbidden:
			code = errs.CodeRoleMismatch
		case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
			code = errs.CodeInvalidValue
		}
		_ = c.JSON(he.Code, Error{Code: string(code), Message: fmt.Sprint(he.Message)})
		return
	}

	_ = writeError(c, err)
}
