package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

const (
	adminID   = kernel.AccountID(1)
	buyerID   = kernel.AccountID(20)
	sellerID  = kernel.AccountID(30)
	partnerID = kernel.AccountID(7)
)

func actor(t *testing.T, id kernel.AccountID, role account.Role) commands.Actor {
	t.Helper()
	a, err := commands.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func accountOf(t *testing.T, id kernel.AccountID, role account.Role, status account.ApprovalStatus) *account.Account {
	t.Helper()
	reason := ""
	if status == account.Rejected {
		reason = "incomplete documents"
	}
	acc, err := account.RestoreAccount(id, role, status, reason, 1)
	require.NoError(t, err)
	return acc
}

func sellerDetails() application.Details {
	return application.Details{
		BusinessName:  "Corner Bakery",
		Documents:     []string{"uploads/licence.pdf"},
		ContactNumber: "+91-9000000000",
		Address:       "12 Market Road",
	}
}

func pendingApplication(t *testing.T) *application.Application {
	t.Helper()
	app, err := application.RestoreApplication(
		kernel.NewUUID(), sellerID, application.SellerKind, sellerDetails(),
		application.Pending, "", nil, nil, time.Now(), 1,
	)
	require.NoError(t, err)
	return app
}

func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("50.00")
	require.NoError(t, err)
	item, err := order.NewItem(11, nil, 2, price)
	require.NoError(t, err)
	total := price.Mul(2)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, sellerID, 5, []order.Item{item},
		total, kernel.ZeroMoney(), total, status, order.PaymentPending, time.Now(), time.Now(), 1,
	)
	require.NoError(t, err)
	return o
}

func snapshot() delivery.Snapshot {
	return delivery.Snapshot{
		ContactName:  "Ravi",
		Phone:        "+91-9000000002",
		AddressLine1: "221 Station Road",
		City:         "Nagpur",
		PostalCode:   "440001",
	}
}

func deliveryFor(t *testing.T, o *order.Order, status delivery.Status, partner *kernel.AccountID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), o.ID(), snapshot(), snapshot(), kernel.ZeroMoney(), partner,
		status, "", time.Now(), time.Now(), 1,
	)
	require.NoError(t, err)
	return d
}

func ptr(id kernel.AccountID) *kernel.AccountID {
	return &id
}
