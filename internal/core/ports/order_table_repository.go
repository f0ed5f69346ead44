package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// OrderTableRepository persists table occupancy.
type OrderTableRepository interface {
	Add(ctx context.Context, aggregate *table.OrderTable) error

	Update(ctx context.Context, aggregate *table.OrderTable) error

	// Get loads a table and locks it for the rest of the transaction.
	// A missing table fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)
}
