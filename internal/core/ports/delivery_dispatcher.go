package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryDispatcher requests a courier for an accepted delivery order.
// The call is synchronous; any error is fatal for the accepting transaction.
type DeliveryDispatcher interface {
	RequestDelivery(ctx context.Context, orderID kernel.UUID, amountDue decimal.Decimal, address string) error
}
