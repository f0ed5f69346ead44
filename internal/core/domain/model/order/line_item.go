package order

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem bypassed NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered quantity of a menu, with the menu price captured
// when the order was placed.
type LineItem struct {
	menuID   kernel.UUID
	quantity int64
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item. Quantity rules depend on the order type and
// are checked by Type.ValidateQuantity, not here.
func NewLineItem(menuID kernel.UUID, quantity int64, price kernel.Money) (*LineItem, error) {
	if err := errors.Join(menuID.Validate(), price.Validate()); err != nil {
		return nil, err
	}

	return &LineItem{
		menuID:   menuID,
		quantity: quantity,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was built through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li *LineItem) MenuID() kernel.UUID {
	return li.menuID
}

func (li *LineItem) Quantity() int64 {
	return li.quantity
}

func (li *LineItem) Price() kernel.Money {
	return li.price
}

// Amount is price × quantity.
func (li *LineItem) Amount() decimal.Decimal {
	return li.price.Times(li.quantity)
}
