package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderFulfillmentQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetOrderFulfillmentQuery(id, 20, account.Buyer)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.OrderID())
	assert.Equal(t, kernel.AccountID(20), query.ViewerID())
	assert.Equal(t, account.Buyer, query.Role())
}

func TestNewGetOrderFulfillmentQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewGetOrderFulfillmentQuery(kernel.UUID{}, 0, account.Role(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderFulfillmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderFulfillmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderFulfillmentQueryIsNotConstructed)
}
