package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/product"
)

// MenuRepository persists menu aggregates with their menu products.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists the display flag and price of an existing menu.
	Update(ctx context.Context, aggregate *menu.Menu) error

	// Get fails with errs.ErrObjectNotFound when the menu does not exist.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs returns each existing menu among ids once, however many
	// times its id is listed.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAllByProductID returns every menu with a menu product referencing productID.
	GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error)

	// GetAllDisplayed returns every menu currently orderable.
	GetAllDisplayed(ctx context.Context) ([]*menu.Menu, error)
}

// ProductRepository persists product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	Update(ctx context.Context, aggregate *product.Product) error

	// Get fails with errs.ErrObjectNotFound when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByIDs returns the products among ids that exist.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
