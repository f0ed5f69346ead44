package services_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, price int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "fried chicken", money(t, price))
	require.NoError(t, err)
	return p
}

// newMenu builds a displayed menu with one line per product, each with quantity 1
// unless quantities says otherwise.
func newMenu(t *testing.T, price int64, products []*product.Product, quantities ...int64) *menu.Menu {
	t.Helper()
	lines := make([]*menu.MenuProduct, 0, len(products))
	for i, p := range products {
		qty := int64(1)
		if i < len(quantities) {
			qty = quantities[i]
		}
		mp, err := menu.NewMenuProduct(p.ID(), qty)
		require.NoError(t, err)
		lines = append(lines, mp)
	}
	m, err := menu.NewMenu(kernel.NewUUID(), "set", money(t, price), true, kernel.NewUUID(), lines)
	require.NoError(t, err)
	return m
}

func pricesOf(products ...*product.Product) map[kernel.UUID]kernel.Money {
	prices := make(map[kernel.UUID]kernel.Money, len(products))
	for _, p := range products {
		prices[p.ID()] = p.Price()
	}
	return prices
}
