package services

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricedMenuProduct is a menu line with its product's current price resolved.
type PricedMenuProduct struct {
	Price    kernel.Money
	Quantity int64
}

// ProductPrices maps product ids to their current prices.
type ProductPrices map[kernel.UUID]kernel.Money

// MenuPriceRule is the predicate "menu price <= Σ product price × quantity".
// Equality satisfies the rule.
type MenuPriceRule struct{}

// NewMenuPriceRule creates the rule.
func NewMenuPriceRule() MenuPriceRule {
	return MenuPriceRule{}
}

// IsSatisfiedBy evaluates the rule for a price and its resolved product lines.
func (MenuPriceRule) IsSatisfiedBy(menuPrice kernel.Money, products []PricedMenuProduct) bool {
	return !menuPrice.Decimal().GreaterThan(ProductSum(products))
}

// ProductSum is Σ price × quantity.
func ProductSum(products []PricedMenuProduct) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price.Times(p.Quantity))
	}
	return sum
}

// Check resolves every product of m against prices and evaluates the rule.
// A product missing from prices fails with errs.ErrObjectNotFound.
func (r MenuPriceRule) Check(m *menu.Menu, prices ProductPrices) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}

	menuProducts := m.MenuProducts()
	priced := make([]PricedMenuProduct, 0, len(menuProducts))
	for _, mp := range menuProducts {
		price, ok := prices[mp.ProductID()]
		if !ok {
			return false, errs.NewObjectNotFoundError("product", mp.ProductID().String())
		}
		priced = append(priced, PricedMenuProduct{Price: price, Quantity: mp.Quantity()})
	}

	return r.IsSatisfiedBy(m.Price(), priced), nil
}
