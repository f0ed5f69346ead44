package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrMenuProductIsNotConstructed is returned when a MenuProduct bypassed NewMenuProduct.
var ErrMenuProductIsNotConstructed = errors.New("MenuProduct must be created via NewMenuProduct constructor")

// MenuProduct is a quantity of one product inside a menu.
type MenuProduct struct {
	productID kernel.UUID
	quantity  int64

	guard guard.ConstructorGuard
}

// NewMenuProduct creates a menu line. Quantity must not be negative.
func NewMenuProduct(productID kernel.UUID, quantity int64) (*MenuProduct, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 0", quantity))
	}

	return &MenuProduct{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the menu product was built through NewMenuProduct.
func (mp *MenuProduct) Validate() error {
	if mp == nil {
		return ErrMenuProductIsNotConstructed
	}
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

func (mp *MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

func (mp *MenuProduct) Quantity() int64 {
	return mp.quantity
}
