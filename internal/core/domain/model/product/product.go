// Package product models the Product aggregate: a named, priced item that
// menus are composed of.
package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product bypassed its constructors.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product has a name and a non-negative price. Changing the price is what
// triggers the menu price-change cascade.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a product.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setID(id), p.setName(name), p.setPrice(price)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

// ChangePrice replaces the price. Money is non-negative by construction.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	p.price = price
	return nil
}
