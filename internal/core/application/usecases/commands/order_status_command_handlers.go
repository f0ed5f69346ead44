package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
)

// ServeOrderCommandHandler moves an Accepted order to Served.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{uowFactory: uowFactory}
}

func (h ServeOrderCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	return changeOrderStatus(ctx, h.uowFactory, cmd, func(_ OrderUoW, o *order.Order) error {
		return o.Serve()
	})
}

// StartDeliveryCommandHandler moves a Served delivery order to Delivering.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	return changeOrderStatus(ctx, h.uowFactory, cmd, func(_ OrderUoW, o *order.Order) error {
		return o.StartDelivery()
	})
}

// CompleteDeliveryCommandHandler moves a Delivering order to Delivered.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	return changeOrderStatus(ctx, h.uowFactory, cmd, func(_ OrderUoW, o *order.Order) error {
		return o.CompleteDelivery()
	})
}

// changeOrderStatus loads the order inside a unit of work, applies transition,
// persists the order and commits. transition may touch other repositories of
// the same unit of work; it runs before the order is written.
func changeOrderStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	cmd ChangeOrderStatusCommand,
	transition func(uow OrderUoW, o *order.Order) error,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := uowFactory.Create()
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

	if err = transition(uow, o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
