package commands

import (
	"context"

	"kitchenpos/internal/core/domain/services"
)

// HideMispricedMenusCommandHandler hides every displayed menu whose price
// exceeds its product sum. Running it repeatedly is harmless.
type HideMispricedMenusCommandHandler struct {
	uowFactory CatalogUoWFactory
	cascade    services.PriceChangeCascade
}

func NewHideMispricedMenusCommandHandler(uowFactory CatalogUoWFactory) HideMispricedMenusCommandHandler {
	return HideMispricedMenusCommandHandler{
		uowFactory: uowFactory,
		cascade:    services.NewPriceChangeCascade(),
	}
}

// Handle returns how many menus were hidden.
func (h HideMispricedMenusCommandHandler) Handle(ctx context.Context, cmd HideMispricedMenusCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	menus, err := menuRepo.GetAllDisplayed(ctx)
	if err != nil {
		return 0, err
	}

	prices, err := loadProductPrices(ctx, uow.ProductRepository(), menus)
	if err != nil {
		return 0, err
	}

	hidden, err := h.cascade.HideMispriced(menus, prices)
	if err != nil {
		return 0, err
	}

	if err = updateMenus(ctx, menuRepo, hidden); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(hidden), nil
}
