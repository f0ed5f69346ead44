package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrMenuIsNotConstructed is returned when a Menu bypassed its constructors.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

// Menu is what customers order. Only displayed menus are orderable, and only
// at their current price.
type Menu struct {
	id           kernel.UUID
	name         string
	price        kernel.Money
	displayed    bool
	menuGroupID  kernel.UUID
	menuProducts []*MenuProduct

	guard guard.ConstructorGuard
}

// NewMenu creates a menu. Whether its price is consistent with its products
// is checked by services.MenuPriceRule, which needs product prices.
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Money,
	displayed bool,
	menuGroupID kernel.UUID,
	menuProducts []*MenuProduct,
) (*Menu, error) {
	m := &Menu{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu rebuilds a menu from storage.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Money,
	displayed bool,
	menuGroupID kernel.UUID,
	menuProducts []*MenuProduct,
) (*Menu, error) {
	return NewMenu(id, name, price, displayed, menuGroupID, menuProducts)
}

// Validate ensures the menu was built through a constructor.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() kernel.Money {
	return m.price
}

func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// MenuProducts returns a copy of the product lines in their stored order.
func (m *Menu) MenuProducts() []*MenuProduct {
	items := make([]*MenuProduct, len(m.menuProducts))
	copy(items, m.menuProducts)
	return items
}

// ContainsProduct reports whether any menu line references productID.
func (m *Menu) ContainsProduct(productID kernel.UUID) bool {
	for _, mp := range m.menuProducts {
		if mp.productID.IsEqual(productID) {
			return true
		}
	}
	return false
}

// Hide stops the menu from being orderable. Hiding a hidden menu is a no-op.
func (m *Menu) Hide() {
	m.displayed = false
}

// ValidateOrderable checks a menu can be ordered at statedPrice:
// a hidden menu fails with errs.ErrStateIsInvalid, a price that differs from
// the current one with errs.ErrValueIsInvalid.
func (m *Menu) ValidateOrderable(statedPrice kernel.Money) error {
	if !m.displayed {
		return errs.NewStateIsInvalidErrorWithCause("menu", fmt.Errorf("menu %s is not displayed", m.id))
	}
	if err := statedPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	if !m.price.IsEqual(statedPrice) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("stated price %s differs from menu price %s", statedPrice, m.price),
		)
	}
	return nil
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuGroupId", err)
	}
	m.menuGroupID = id
	return nil
}

func (m *Menu) setMenuProducts(menuProducts []*MenuProduct) error {
	if len(menuProducts) == 0 {
		return errs.NewValueIsRequiredError("menuProducts")
	}
	for _, mp := range menuProducts {
		if err := mp.Validate(); err != nil {
			return err
		}
	}
	m.menuProducts = make([]*MenuProduct, len(menuProducts))
	copy(m.menuProducts, menuProducts)
	return nil
}
