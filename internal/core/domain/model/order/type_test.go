package order_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromString(t *testing.T) {
	testCases := map[string]order.Type{
		"EAT_IN":   order.EatIn,
		"TAKEOUT":  order.Takeout,
		"DELIVERY": order.Delivery,
		"":         order.UnknownType,
	}
	for name, want := range testCases {
		got, err := order.TypeFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := order.TypeFromString("DRIVE_THRU")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.TypeFromString("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestType_Validate(t *testing.T) {
	require.NoError(t, order.Delivery.Validate())
	require.ErrorIs(t, order.UnknownType.Validate(), errs.ErrValueIsRequired)
	require.ErrorIs(t, order.Type(9).Validate(), errs.ErrValueIsInvalid)
}

func TestType_ValidateQuantity(t *testing.T) {
	for _, tp := range []order.Type{order.Takeout, order.Delivery} {
		require.NoError(t, tp.ValidateQuantity(0))
		require.NoError(t, tp.ValidateQuantity(3))
		require.ErrorIs(t, tp.ValidateQuantity(-1), errs.ErrValueIsInvalid, tp.String())
	}

	require.NoError(t, order.EatIn.ValidateQuantity(-1))
	require.NoError(t, order.EatIn.ValidateQuantity(-100))
}
