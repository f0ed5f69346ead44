package services_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuPriceRule_IsSatisfiedBy(t *testing.T) {
	rule := services.NewMenuPriceRule()
	lines := []services.PricedMenuProduct{
		{Price: money(t, 16000), Quantity: 1},
		{Price: money(t, 1000), Quantity: 2},
	}

	tests := []struct {
		name      string
		menuPrice int64
		want      bool
	}{
		{"below the sum", 17000, true},
		{"equal to the sum", 18000, true},
		{"one above the sum", 18001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.IsSatisfiedBy(money(t, tt.menuPrice), lines))
		})
	}
}

func TestMenuPriceRule_ZeroQuantityContributesNothing(t *testing.T) {
	rule := services.NewMenuPriceRule()
	lines := []services.PricedMenuProduct{{Price: money(t, 16000), Quantity: 0}}

	assert.True(t, services.ProductSum(lines).Equal(decimal.Zero))
	assert.True(t, rule.IsSatisfiedBy(kernel.ZeroMoney(), lines))
	assert.False(t, rule.IsSatisfiedBy(money(t, 1), lines))
}

func TestMenuPriceRule_Check(t *testing.T) {
	rule := services.NewMenuPriceRule()
	chicken := newProduct(t, 16000)
	coke := newProduct(t, 1000)

	t.Run("consistent menu", func(t *testing.T) {
		m := newMenu(t, 17000, []*product.Product{chicken, coke})
		ok, err := rule.Check(m, pricesOf(chicken, coke))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("overpriced menu", func(t *testing.T) {
		m := newMenu(t, 33001, []*product.Product{chicken, coke}, 2, 1)
		ok, err := rule.Check(m, pricesOf(chicken, coke))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing product price", func(t *testing.T) {
		m := newMenu(t, 17000, []*product.Product{chicken, coke})
		_, err := rule.Check(m, pricesOf(chicken))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("menu not constructed", func(t *testing.T) {
		_, err := rule.Check(nil, pricesOf(chicken))
		require.Error(t, err)
	})
}
