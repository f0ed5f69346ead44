package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler completes an order and, for eat-in orders,
// releases the table once no order on it remains uncompleted.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates the handler.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle completes the order. The sibling check runs after the completed
// order is written, so the order itself never keeps its table occupied.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Complete(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.Type() == order.EatIn {
		if err = h.releaseTableIfIdle(ctx, uow, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// releaseTableIfIdle locks the table before looking for open siblings, so two
// orders completing on one table cannot both see the other as still open.
func (h CompleteOrderCommandHandler) releaseTableIfIdle(ctx context.Context, uow OrderUoW, o *order.Order) error {
	tableID := *o.TableID()

	tableRepo := uow.OrderTableRepository()
	t, err := tableRepo.Get(ctx, tableID)
	if err != nil {
		return err
	}

	busy, err := uow.OrderRepository().ExistsByTableAndStatusNot(ctx, tableID, order.Completed)
	if err != nil {
		return err
	}
	if busy {
		return nil
	}

	t.Release()
	return tableRepo.Update(ctx, t)
}
