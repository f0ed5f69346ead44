// Package commands contains the state-changing use cases of kitchenpos.
// Every handler validates its command, opens a unit of work, defers Rollback
// and commits only when every step succeeded, so a failure leaves no partial
// state behind.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler family needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	// OrderUoW serves the order lifecycle: orders, the menus they reference
	// and the tables eat-in orders occupy.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW serves product price changes and menu re-validation.
	CatalogUoW interface {
		TxManager
		MenuRepoFactory
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
