package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"
)

// ChangeProductPriceCommandHandler stores a new product price and hides every
// menu the new price makes inconsistent, in one transaction.
type ChangeProductPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
	cascade    services.PriceChangeCascade
}

// NewChangeProductPriceCommandHandler creates the handler.
func NewChangeProductPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
		cascade:    services.NewPriceChangeCascade(),
	}
}

// Handle applies the price and runs the cascade. Returns the updated product.
func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	menuRepo := uow.MenuRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.ChangePrice(cmd.Price()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	menus, err := menuRepo.GetAllByProductID(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	prices, err := loadProductPrices(ctx, productRepo, menus)
	if err != nil {
		return nil, err
	}

	hidden, err := h.cascade.Apply(p, menus, prices)
	if err != nil {
		return nil, err
	}

	if err = updateMenus(ctx, menuRepo, hidden); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// loadProductPrices fetches the current price of every product used by menus.
func loadProductPrices(
	ctx context.Context,
	productRepo ports.ProductRepository,
	menus []*menu.Menu,
) (services.ProductPrices, error) {
	seen := make(map[kernel.UUID]struct{})
	ids := make([]kernel.UUID, 0)
	for _, m := range menus {
		for _, mp := range m.MenuProducts() {
			if _, ok := seen[mp.ProductID()]; ok {
				continue
			}
			seen[mp.ProductID()] = struct{}{}
			ids = append(ids, mp.ProductID())
		}
	}

	prices := make(services.ProductPrices, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	products, err := productRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		prices[p.ID()] = p.Price()
	}

	return prices, nil
}

func updateMenus(ctx context.Context, menuRepo ports.MenuRepository, menus []*menu.Menu) error {
	for _, m := range menus {
		if err := menuRepo.Update(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
