package order_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Waiting, order.Accepted, order.Served, order.Delivering, order.Delivered, order.Completed,
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "WAITING", order.Waiting.String())
	assert.Equal(t, "DELIVERING", order.Delivering.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_SingleStepTransitions(t *testing.T) {
	testCases := []struct {
		name string
		from order.Status
		step func(order.Status) (order.Status, error)
		to   order.Status
	}{
		{"accept", order.Waiting, order.Status.Accept, order.Accepted},
		{"serve", order.Accepted, order.Status.Serve, order.Served},
		{"complete delivery", order.Delivering, order.Status.CompleteDelivery, order.Delivered},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, from := range allStatuses {
				got, err := tc.step(from)
				if from == tc.from {
					require.NoError(t, err)
					assert.Equal(t, tc.to, got)
					continue
				}
				require.ErrorIs(t, err, errs.ErrStateIsInvalid, "from %s", from)
				assert.Equal(t, order.Unknown, got)
			}
		})
	}
}

func TestStatus_StartDelivery(t *testing.T) {
	got, err := order.Served.StartDelivery(order.Delivery)
	require.NoError(t, err)
	assert.Equal(t, order.Delivering, got)

	for _, nonDelivery := range []order.Type{order.Takeout, order.EatIn} {
		_, err = order.Served.StartDelivery(nonDelivery)
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Contains(t, err.Error(), "type")
	}

	_, err = order.Accepted.StartDelivery(order.Delivery)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Contains(t, err.Error(), "status")
}

func TestStatus_Complete(t *testing.T) {
	testCases := []struct {
		orderType order.Type
		from      order.Status
	}{
		{order.Delivery, order.Delivered},
		{order.Takeout, order.Served},
		{order.EatIn, order.Served},
	}

	for _, tc := range testCases {
		t.Run(tc.orderType.String(), func(t *testing.T) {
			for _, from := range allStatuses {
				got, err := from.Complete(tc.orderType)
				if from == tc.from {
					require.NoError(t, err)
					assert.Equal(t, order.Completed, got)
					continue
				}
				require.ErrorIs(t, err, errs.ErrStateIsInvalid, "from %s", from)
			}
		})
	}
}
