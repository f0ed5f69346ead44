package order

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order bypassed its constructors.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewTakeoutOrder, NewDeliveryOrder, NewEatInOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - at least one line item
//   - deliveryAddress is set iff the type is Delivery
//   - tableID is set iff the type is EatIn
//   - status only moves forward along the graph allowed for its type
type Order struct {
	id              kernel.UUID
	orderType       Type
	status          Status
	orderDateTime   time.Time
	lineItems       []*LineItem
	deliveryAddress string
	tableID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeoutOrder opens a takeout order in Waiting status.
func NewTakeoutOrder(id kernel.UUID, orderDateTime time.Time, lineItems []*LineItem) (*Order, error) {
	return newOrder(id, Takeout, orderDateTime, lineItems)
}

// NewDeliveryOrder opens a delivery order in Waiting status. The address is required.
func NewDeliveryOrder(id kernel.UUID, orderDateTime time.Time, lineItems []*LineItem, address string) (*Order, error) {
	o, err := newOrder(id, Delivery, orderDateTime, lineItems)
	if err != nil {
		return nil, err
	}

	if address == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return o, nil
}

// NewEatInOrder opens an eat-in order against an occupied table.
// An unoccupied table fails with errs.ErrStateIsInvalid.
func NewEatInOrder(id kernel.UUID, orderDateTime time.Time, lineItems []*LineItem, t *table.OrderTable) (*Order, error) {
	o, err := newOrder(id, EatIn, orderDateTime, lineItems)
	if err != nil {
		return nil, err
	}

	if err = t.Validate(); err != nil {
		return nil, err
	}
	if !t.IsOccupied() {
		return nil, errs.NewStateIsInvalidErrorWithCause(
			"orderTable", fmt.Errorf("table %s is not occupied", t.ID()),
		)
	}

	tableID := t.ID()
	o.tableID = &tableID
	return o, nil
}

// RestoreOrder rebuilds an order from storage, including its current status.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	orderDateTime time.Time,
	lineItems []*LineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (*Order, error) {
	o, err := newOrder(id, orderType, orderDateTime, lineItems)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (orderType == Delivery) != (deliveryAddress != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"deliveryAddress", fmt.Errorf("%s order with address %q", orderType, deliveryAddress),
		)
	}
	if (orderType == EatIn) != (tableID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderTable", fmt.Errorf("%s order with table %v", orderType, tableID),
		)
	}
	if tableID != nil {
		if err = tableID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.deliveryAddress = deliveryAddress
	o.tableID = tableID
	return o, nil
}

func newOrder(id kernel.UUID, orderType Type, orderDateTime time.Time, lineItems []*LineItem) (*Order, error) {
	o := &Order{
		status: Waiting,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setOrderDateTime(orderDateTime),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) OrderDateTime() time.Time {
	return o.orderDateTime
}

// LineItems returns a copy of the line item slice in creation order.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// DeliveryAddress is empty for non-delivery orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TableID is nil for non-eat-in orders.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// DeliveryLineItem is the line item whose amount is sent to the delivery
// dispatcher on accept: the last one (see DESIGN.md, open questions).
func (o *Order) DeliveryLineItem() *LineItem {
	return o.lineItems[len(o.lineItems)-1]
}

// DeliveryAmountDue is menuPrice × quantity of DeliveryLineItem. menuPrice is
// the current price of that line's menu, not the price stored on the line.
func (o *Order) DeliveryAmountDue(menuPrice kernel.Money) decimal.Decimal {
	return menuPrice.Times(o.DeliveryLineItem().Quantity())
}

// Accept moves the order from Waiting to Accepted.
func (o *Order) Accept() error {
	return o.transition(o.status.Accept)
}

// Serve moves the order from Accepted to Served.
func (o *Order) Serve() error {
	return o.transition(o.status.Serve)
}

// StartDelivery moves a delivery order from Served to Delivering.
func (o *Order) StartDelivery() error {
	return o.transition(func() (Status, error) { return o.status.StartDelivery(o.orderType) })
}

// CompleteDelivery moves the order from Delivering to Delivered.
func (o *Order) CompleteDelivery() error {
	return o.transition(o.status.CompleteDelivery)
}

// Complete finishes the order: Delivered for delivery orders, Served otherwise.
func (o *Order) Complete() error {
	return o.transition(func() (Status, error) { return o.status.Complete(o.orderType) })
}

func (o *Order) transition(next func() (Status, error)) error {
	newStatus, err := next()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setOrderDateTime(orderDateTime time.Time) error {
	if orderDateTime.IsZero() {
		return errs.NewValueIsRequiredError("orderDateTime")
	}
	o.orderDateTime = orderDateTime
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
