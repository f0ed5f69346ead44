package commands

import (
	"context"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// CreateOrderCommandHandler validates a new order against the current menus
// and tables and persists it in Waiting status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errs.IsInvalidArgument(err):        // 400
//	case errors.Is(err, errs.ErrObjectNotFound): // 404
//	case errors.Is(err, errs.ErrStateIsInvalid): // 409
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates the handler. now stamps orderDateTime.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle runs the creation checks in this order: menu existence as a batch,
// then per line quantity, menu presence, display flag and price, then the
// delivery address or the table.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	lineItems, err := h.buildLineItems(ctx, uow.MenuRepository(), cmd)
	if err != nil {
		return nil, err
	}

	created, err := h.newOrder(ctx, uow.OrderTableRepository(), cmd, lineItems)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (h CreateOrderCommandHandler) buildLineItems(
	ctx context.Context,
	menuRepo ports.MenuRepository,
	cmd CreateOrderCommand,
) ([]*order.LineItem, error) {
	requested := cmd.LineItems()

	menuIDs := make([]kernel.UUID, 0, len(requested))
	for _, item := range requested {
		menuIDs = append(menuIDs, item.MenuID)
	}

	menus, err := menuRepo.GetAllByIDs(ctx, menuIDs)
	if err != nil {
		return nil, err
	}
	if len(menus) != len(requested) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"lineItems", fmt.Errorf("%d of %d menus found", len(menus), len(requested)),
		)
	}

	lineItems := make([]*order.LineItem, 0, len(requested))
	for _, item := range requested {
		if err = cmd.Type().ValidateQuantity(item.Quantity); err != nil {
			return nil, err
		}

		m, menuErr := menuRepo.Get(ctx, item.MenuID)
		if menuErr != nil {
			return nil, menuErr
		}

		if err = m.ValidateOrderable(item.Price); err != nil {
			return nil, err
		}

		lineItem, itemErr := order.NewLineItem(m.ID(), item.Quantity, m.Price())
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}

func (h CreateOrderCommandHandler) newOrder(
	ctx context.Context,
	tableRepo ports.OrderTableRepository,
	cmd CreateOrderCommand,
	lineItems []*order.LineItem,
) (*order.Order, error) {
	id := kernel.NewUUID()
	orderDateTime := h.now()

	switch cmd.Type() {
	case order.Delivery:
		return order.NewDeliveryOrder(id, orderDateTime, lineItems, cmd.DeliveryAddress())
	case order.EatIn:
		if cmd.TableID() == nil {
			return nil, errs.NewValueIsRequiredError("orderTableId")
		}
		t, err := tableRepo.Get(ctx, *cmd.TableID())
		if err != nil {
			return nil, err
		}
		return order.NewEatInOrder(id, orderDateTime, lineItems, t)
	case order.Takeout:
		return order.NewTakeoutOrder(id, orderDateTime, lineItems)
	default:
		return nil, cmd.Type().Validate()
	}
}
