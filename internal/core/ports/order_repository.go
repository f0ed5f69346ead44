// Package ports defines the contracts between the kitchenpos core and its
// infrastructure: repositories, the delivery dispatcher and the unit of work.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates with their line items.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order and locks it for the rest of the transaction.
	// A missing order fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByTableAndStatusNot reports whether any order on tableID has a
	// status other than status.
	ExistsByTableAndStatusNot(ctx context.Context, tableID kernel.UUID, status order.Status) (bool, error)
}
