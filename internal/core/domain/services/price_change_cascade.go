package services

import (
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
)

// PriceChangeCascade re-validates menus after a product price change and
// hides the ones whose price now exceeds their product sum.
//
// Already hidden menus are skipped, so applying the cascade again never
// re-displays a menu and never reports it twice.
type PriceChangeCascade struct {
	rule MenuPriceRule
}

// NewPriceChangeCascade creates the cascade over the standard price rule.
func NewPriceChangeCascade() PriceChangeCascade {
	return PriceChangeCascade{rule: NewMenuPriceRule()}
}

// Apply evaluates every displayed menu referencing changed. prices must hold
// the current price of every other product those menus use; the changed
// product's own entry is taken from changed. Returns the menus hidden by
// this call.
func (c PriceChangeCascade) Apply(
	changed *product.Product,
	menus []*menu.Menu,
	prices ProductPrices,
) ([]*menu.Menu, error) {
	if err := changed.Validate(); err != nil {
		return nil, err
	}

	current := make(ProductPrices, len(prices)+1)
	for id, price := range prices {
		current[id] = price
	}
	current[changed.ID()] = changed.Price()

	hidden := make([]*menu.Menu, 0)
	for _, m := range menus {
		if !m.IsDisplayed() || !m.ContainsProduct(changed.ID()) {
			continue
		}

		ok, err := c.rule.Check(m, current)
		if err != nil {
			return nil, err
		}
		if !ok {
			m.Hide()
			hidden = append(hidden, m)
		}
	}

	return hidden, nil
}

// HideMispriced applies the rule to every displayed menu regardless of which
// product changed. Used by the periodic audit.
func (c PriceChangeCascade) HideMispriced(menus []*menu.Menu, prices ProductPrices) ([]*menu.Menu, error) {
	hidden := make([]*menu.Menu, 0)
	for _, m := range menus {
		if !m.IsDisplayed() {
			continue
		}

		ok, err := c.rule.Check(m, prices)
		if err != nil {
			return nil, err
		}
		if !ok {
			m.Hide()
			hidden = append(hidden, m)
		}
	}

	return hidden, nil
}
