package errs

import (
	"errors"
	"fmt"
)

// Lifecycle rule sentinels. Every guard in the core fails with one of these,
// wrapped in a RuleViolationError that carries the detail.
var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrRoleMismatch          = errors.New("role mismatch")
	ErrPendingApproval       = errors.New("pending approval")
	ErrAlreadyReviewed       = errors.New("already reviewed")
	ErrIllegalTransition     = errors.New("illegal transition")
	ErrNotPending            = errors.New("not pending")
	ErrTerminalState         = errors.New("terminal state")
	ErrOrderNotConfirmed     = errors.New("order not confirmed")
	ErrDeliveryAlreadyExists = errors.New("delivery already exists")
	ErrMissingReason         = errors.New("missing reason")
	ErrPartnerUnavailable    = errors.New("partner unavailable")
)

// Code is the stable identifier of an error class surfaced to callers.
type Code string

const (
	CodeNotFound              Code = "NOT_FOUND"
	CodeNotAuthenticated      Code = "NOT_AUTHENTICATED"
	CodeRoleMismatch          Code = "ROLE_MISMATCH"
	CodePendingApproval       Code = "PENDING_APPROVAL"
	CodeAlreadyReviewed       Code = "ALREADY_REVIEWED"
	CodeIllegalTransition     Code = "ILLEGAL_TRANSITION"
	CodeNotPending            Code = "NOT_PENDING"
	CodeTerminalState         Code = "TERMINAL_STATE"
	CodeOrderNotConfirmed     Code = "ORDER_NOT_CONFIRMED"
	CodeDeliveryAlreadyExists Code = "DELIVERY_ALREADY_EXISTS"
	CodeMissingReason         Code = "MISSING_REASON"
	CodePartnerUnavailable    Code = "PARTNER_UNAVAILABLE"
	CodeInvalidValue          Code = "INVALID_VALUE"
	CodeConflict              Code = "CONFLICT"
	CodeInternal              Code = "INTERNAL"
)

// RuleViolationError reports a request the lifecycle refuses. Rule is one of
// the sentinels above so callers can match with errors.Is.
type RuleViolationError struct {
	Rule   error
	Detail string
	Cause  error
}

func NewRuleViolationError(rule error, detail string) *RuleViolationError {
	return &RuleViolationError{
		Rule:   rule,
		Detail: detail,
	}
}

func NewRuleViolationErrorWithCause(rule error, detail string, cause error) *RuleViolationError {
	return &RuleViolationError{
		Rule:   rule,
		Detail: detail,
		Cause:  cause,
	}
}

func (e *RuleViolationError) Error() string {
	msg := e.Rule.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *RuleViolationError) Unwrap() error {
	return e.Rule
}

var codes = []struct {
	err  error
	code Code
}{
	{ErrObjectNotFound, CodeNotFound},
	{ErrNotAuthenticated, CodeNotAuthenticated},
	{ErrRoleMismatch, CodeRoleMismatch},
	{ErrPendingApproval, CodePendingApproval},
	{ErrAlreadyReviewed, CodeAlreadyReviewed},
	{ErrIllegalTransition, CodeIllegalTransition},
	{ErrNotPending, CodeNotPending},
	{ErrTerminalState, CodeTerminalState},
	{ErrOrderNotConfirmed, CodeOrderNotConfirmed},
	{ErrDeliveryAlreadyExists, CodeDeliveryAlreadyExists},
	{ErrMissingReason, CodeMissingReason},
	{ErrPartnerUnavailable, CodePartnerUnavailable},
	{ErrVersionIsInvalid, CodeConflict},
	{ErrValueIsInvalid, CodeInvalidValue},
	{ErrValueIsRequired, CodeInvalidValue},
	{ErrValueIsOutOfRange, CodeInvalidValue},
}

// CodeOf returns the code of err. Classes are checked in the priority order of
// the table above, which matters for joined errors. Unknown errors are CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}
