package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderLineItem is one requested line: a menu, a quantity and the
// price the customer saw.
type CreateOrderLineItem struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    kernel.Money
}

// CreateOrderCommand requests a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Delivery, []CreateOrderLineItem{
//	    {MenuID: menuID, Quantity: 2, Price: price},
//	}, "12 Baker Street", nil)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderType       order.Type
	lineItems       []CreateOrderLineItem
	deliveryAddress string
	tableID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the request shape: a type and at least one line
// item. Everything that needs stored state is checked by the handler.
func NewCreateOrderCommand(
	orderType order.Type,
	lineItems []CreateOrderLineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		tableID:         tableID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setType(orderType), cmd.setLineItems(lineItems)); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Type() order.Type {
	return c.orderType
}

// LineItems returns the requested lines in request order.
func (c CreateOrderCommand) LineItems() []CreateOrderLineItem {
	items := make([]CreateOrderLineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

func (c *CreateOrderCommand) setType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []CreateOrderLineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	c.lineItems = make([]CreateOrderLineItem, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}
