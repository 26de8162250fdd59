package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderIDText = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func TestUUIDFromString(t *testing.T) {
	accepted := map[string]string{
		"canonical":  orderIDText,
		"braced":     "{" + orderIDText + "}",
		"urn":        "urn:uuid:" + orderIDText,
		"no hyphens": "7c9e6679742540de944be07fc1f90ae7",
		"upper case": "7C9E6679-7425-40DE-944B-E07FC1F90AE7",
	}
	for name, input := range accepted {
		t.Run("accepts "+name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err)
			assert.Equal(t, orderIDText, id.String())
			assert.NoError(t, id.Validate())
		})
	}

	for _, input := range []string{"", "order-42", orderIDText[:23], orderIDText + "0", "zz" + orderIDText[2:]} {
		_, err := kernel.UUIDFromString(input)
		assert.ErrorContains(t, err, "invalid UUID format", "input %q", input)
	}
}

func TestUUIDFromBytes(t *testing.T) {
	parsed, err := kernel.UUIDFromString(orderIDText)
	require.NoError(t, err)

	t.Run("round trips through the column value", func(t *testing.T) {
		raw := parsed.Bytes()
		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7c, 0x9e})
		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("rejects the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Identity(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	assert.NoError(t, a.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`, a.String())
	assert.False(t, a.IsEqual(b))
	assert.Equal(t, a.String(), a.Bytes().String())

	var zero kernel.UUID
	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.False(t, zero.IsEqual(a))
}

func TestAccountIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    kernel.AccountID
		wantErr bool
	}{
		{name: "token subject", input: "42", want: 42},
		{name: "large id", input: "9007199254740993", want: 9007199254740993},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-7", wantErr: true},
		{name: "not a number", input: "buyer", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.AccountIDFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, tt.input, id.String())
			assert.Equal(t, int64(tt.want), id.Int64())
		})
	}
}
