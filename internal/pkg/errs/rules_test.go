package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleViolationError(t *testing.T) {
	t.Run("formats rule and detail", func(t *testing.T) {
		err := errs.NewRuleViolationError(errs.ErrIllegalTransition, "delivered -> confirmed")

		assert.Equal(t, "illegal transition: delivered -> confirmed", err.Error())
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("formats rule without detail", func(t *testing.T) {
		err := errs.NewRuleViolationError(errs.ErrMissingReason, "")

		assert.Equal(t, "missing reason", err.Error())
	})

	t.Run("keeps cause in message", func(t *testing.T) {
		cause := errors.New("partner offline")
		err := errs.NewRuleViolationErrorWithCause(errs.ErrPartnerUnavailable, "partner 7", cause)

		assert.Equal(t, "partner unavailable: partner 7 (cause: partner offline)", err.Error())
		assert.Equal(t, cause, err.Cause)
		require.ErrorIs(t, err, errs.ErrPartnerUnavailable)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("decide: %w", errs.NewRuleViolationError(errs.ErrAlreadyReviewed, ""))

		require.ErrorIs(t, err, errs.ErrAlreadyReviewed)
		var rv *errs.RuleViolationError
		require.ErrorAs(t, err, &rv)
		assert.Equal(t, errs.ErrAlreadyReviewed, rv.Rule)
	})
}

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Code
	}{
		{"nil", nil, ""},
		{"not found", errs.NewObjectNotFoundError("order", "1"), errs.CodeNotFound},
		{"not authenticated", errs.NewRuleViolationError(errs.ErrNotAuthenticated, ""), errs.CodeNotAuthenticated},
		{"role mismatch", errs.NewRuleViolationError(errs.ErrRoleMismatch, ""), errs.CodeRoleMismatch},
		{"pending approval", errs.NewRuleViolationError(errs.ErrPendingApproval, ""), errs.CodePendingApproval},
		{"already reviewed", errs.NewRuleViolationError(errs.ErrAlreadyReviewed, ""), errs.CodeAlreadyReviewed},
		{"illegal transition", errs.NewRuleViolationError(errs.ErrIllegalTransition, ""), errs.CodeIllegalTransition},
		{"not pending", errs.NewRuleViolationError(errs.ErrNotPending, ""), errs.CodeNotPending},
		{"terminal state", errs.NewRuleViolationError(errs.ErrTerminalState, ""), errs.CodeTerminalState},
		{"order not confirmed", errs.NewRuleViolationError(errs.ErrOrderNotConfirmed, ""), errs.CodeOrderNotConfirmed},
		{"delivery exists", errs.NewRuleViolationError(errs.ErrDeliveryAlreadyExists, ""), errs.CodeDeliveryAlreadyExists},
		{"missing reason", errs.NewRuleViolationError(errs.ErrMissingReason, ""), errs.CodeMissingReason},
		{"partner unavailable", errs.NewRuleViolationError(errs.ErrPartnerUnavailable, ""), errs.CodePartnerUnavailable},
		{"version", errs.NewVersionIsInvalidError("order"), errs.CodeConflict},
		{"value invalid", errs.NewValueIsInvalidError("fee"), errs.CodeInvalidValue},
		{"value required", errs.NewValueIsRequiredError("fee"), errs.CodeInvalidValue},
		{"out of range", errs.NewValueIsOutOfRangeError("qty", 0, 1, 10), errs.CodeInvalidValue},
		{"unknown", errors.New("connection reset"), errs.CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.CodeOf(tc.err))
		})
	}
}
