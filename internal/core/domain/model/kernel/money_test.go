package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should round to cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal text", func(t *testing.T) {
		m, err := kernel.MoneyFromString("199.90")

		require.NoError(t, err)
		assert.Equal(t, "199.90", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("12.50")
	discount, _ := kernel.MoneyFromString("5.00")

	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "37.50", price.Mul(3).String())
	})

	t.Run("should add", func(t *testing.T) {
		assert.Equal(t, "17.50", price.Add(discount).String())
	})

	t.Run("should subtract", func(t *testing.T) {
		rest, err := price.Sub(discount)

		require.NoError(t, err)
		assert.Equal(t, "7.50", rest.String())
	})

	t.Run("should refuse to go below zero", func(t *testing.T) {
		_, err := discount.Sub(price)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should compare", func(t *testing.T) {
		assert.True(t, price.GreaterThan(discount))
		assert.False(t, discount.GreaterThan(price))
		assert.True(t, price.IsEqual(price.Add(kernel.ZeroMoney())))
	})
}
