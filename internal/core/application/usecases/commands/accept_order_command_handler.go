package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
)

// AcceptOrderCommandHandler moves a Waiting order to Accepted. Delivery orders
// request a courier first; a dispatch failure rolls the acceptance back.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.DeliveryDispatcher
}

// NewAcceptOrderCommandHandler creates the handler.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher ports.DeliveryDispatcher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle accepts the order. The delivery amount is priced at the menu's current
// price, and the dispatcher is called while the transaction is open.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	return changeOrderStatus(ctx, h.uowFactory, cmd, func(uow OrderUoW, o *order.Order) error {
		if err := o.Accept(); err != nil {
			return err
		}

		if o.Type() != order.Delivery {
			return nil
		}

		m, err := uow.MenuRepository().Get(ctx, o.DeliveryLineItem().MenuID())
		if err != nil {
			return err
		}

		return h.dispatcher.RequestDelivery(ctx, o.ID(), o.DeliveryAmountDue(m.Price()), o.DeliveryAddress())
	})
}
