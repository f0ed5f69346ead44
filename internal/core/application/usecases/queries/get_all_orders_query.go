// Package queries contains read-only use cases. Query handlers read straight
// from the database and return flat response structs instead of aggregates.
package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery lists every order with its line items, unfiltered.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is one order as listed.
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	Type            order.Type
	Status          order.Status
	OrderDateTime   time.Time
	DeliveryAddress string
	OrderTableID    *kernel.UUID
	LineItems       []GetAllOrdersLineItemResponse
}

// GetAllOrdersLineItemResponse is one line of a listed order.
type GetAllOrdersLineItemResponse struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    decimal.Decimal
}
