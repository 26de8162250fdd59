package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountWith(t *testing.T, role account.Role, status account.ApprovalStatus) *account.Account {
	t.Helper()
	reason := ""
	if status == account.Rejected {
		reason = "documents expired"
	}
	acc, err := account.RestoreAccount(kernel.AccountID(5), role, status, reason, 1)
	require.NoError(t, err)
	return acc
}

func TestApprovalGate_CanAccess(t *testing.T) {
	gate := services.NewApprovalGate()

	tests := []struct {
		name     string
		acc      *account.Account
		required account.Role
		section  string
		wantErr  error
	}{
		{"no account", nil, account.Seller, "dashboard", errs.ErrNotAuthenticated},
		{"buyer on seller section", accountWith(t, account.Buyer, account.Approved), account.Seller, "orders", errs.ErrRoleMismatch},
		{"approved seller", accountWith(t, account.Seller, account.Approved), account.Seller, "orders", nil},
		{"pending seller on dashboard", accountWith(t, account.Seller, account.Pending), account.Seller, "dashboard", nil},
		{"pending seller on profile", accountWith(t, account.Seller, account.Pending), account.Seller, "profile", nil},
		{"pending seller on settings", accountWith(t, account.Seller, account.Pending), account.Seller, "settings", nil},
		{"pending seller on orders", accountWith(t, account.Seller, account.Pending), account.Seller, "orders", errs.ErrPendingApproval},
		{"rejected seller on products", accountWith(t, account.Seller, account.Rejected), account.Seller, "products", errs.ErrPendingApproval},
		{"rejected seller on dashboard", accountWith(t, account.Seller, account.Rejected), account.Seller, "dashboard", nil},
		{"pending partner has no allow-list", accountWith(t, account.DeliveryPartner, account.Pending), account.DeliveryPartner, "dashboard", errs.ErrPendingApproval},
		{"approved partner", accountWith(t, account.DeliveryPartner, account.Approved), account.DeliveryPartner, "deliveries", nil},
		{"buyer on buyer section", accountWith(t, account.Buyer, account.Approved), account.Buyer, "orders", nil},
		{"admin on admin section", accountWith(t, account.Admin, account.Approved), account.Admin, "applications", nil},
		{"admin on seller section", accountWith(t, account.Admin, account.Approved), account.Seller, "orders", errs.ErrRoleMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.CanAccess(tt.acc, tt.required, tt.section)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApprovalGate_CodesAreDistinct(t *testing.T) {
	gate := services.NewApprovalGate()

	assert.Equal(t, errs.CodeNotAuthenticated, errs.CodeOf(gate.CanAccess(nil, account.Seller, "orders")))
	assert.Equal(t, errs.CodePendingApproval,
		errs.CodeOf(gate.CanAccess(accountWith(t, account.Seller, account.Pending), account.Seller, "orders")))
}
