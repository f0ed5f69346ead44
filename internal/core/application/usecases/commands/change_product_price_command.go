package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand sets a product's price. Negative prices are
// already rejected when the Money value is built.
type ChangeProductPriceCommand struct {
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand validates the product id and that a price is present.
func NewChangeProductPriceCommand(productID kernel.UUID, price kernel.Money) (ChangeProductPriceCommand, error) {
	var priceErr error
	if err := price.Validate(); err != nil {
		priceErr = errs.NewValueIsRequiredErrorWithCause("price", err)
	}

	if err := errors.Join(productID.Validate(), priceErr); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return ChangeProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}
