package cancellation_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cancellation"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	testCases := []struct {
		kind   cancellation.Kind
		status string
		want   bool
	}{
		{cancellation.Order, "pending", true},
		{cancellation.Order, "confirmed", true},
		{cancellation.Order, "processing", false},
		{cancellation.Order, "shipped", false},
		{cancellation.Order, "delivered", false},
		{cancellation.Order, "cancelled", false},
		{cancellation.Delivery, "pending", true},
		{cancellation.Delivery, "assigned", true},
		{cancellation.Delivery, "in_progress", true},
		{cancellation.Delivery, "picked_up", true},
		{cancellation.Delivery, "out_for_delivery", true},
		{cancellation.Delivery, "delivered", false},
		{cancellation.Delivery, "cancelled", false},
		{cancellation.Delivery, "", false},
		{cancellation.Kind(0), "pending", false},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String()+"/"+tc.status, func(t *testing.T) {
			assert.Equal(t, tc.want, cancellation.CanCancel(tc.status, tc.kind))
		})
	}
}
