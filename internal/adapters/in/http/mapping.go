package http

import (
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func newCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	orderType, err := order.TypeFromString(body.Type)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lineItems := make([]commands.CreateOrderLineItem, 0, len(body.OrderLineItems))
	for _, li := range body.OrderLineItems {
		menuID, err := kernel.UUIDFromBytes(li.MenuId[:])
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		price, err := kernel.MoneyFromString(li.Price)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		lineItems = append(lineItems, commands.CreateOrderLineItem{
			MenuID:   menuID,
			Quantity: li.Quantity,
			Price:    price,
		})
	}

	var address string
	if body.DeliveryAddress != nil {
		address = *body.DeliveryAddress
	}

	var tableID *kernel.UUID
	if body.OrderTableId != nil {
		id, err := kernel.UUIDFromBytes(body.OrderTableId[:])
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		tableID = &id
	}

	return commands.NewCreateOrderCommand(orderType, lineItems, address, tableID)
}

func toOrderResponse(o *order.Order) servers.Order {
	items := o.LineItems()
	lineItems := make([]servers.OrderLineItem, len(items))
	for i, li := range items {
		lineItems[i] = servers.OrderLineItem{
			MenuId:   li.MenuID().Bytes(),
			Quantity: li.Quantity(),
			Price:    formatMoney(li.Price().Decimal()),
		}
	}

	return servers.Order{
		Id:              o.ID().Bytes(),
		Type:            o.Type().String(),
		Status:          o.Status().String(),
		OrderDateTime:   o.OrderDateTime(),
		DeliveryAddress: optionalString(o.DeliveryAddress()),
		OrderTableId:    optionalUUID(o.TableID()),
		OrderLineItems:  lineItems,
	}
}

func toOrderListResponse(result []queries.GetAllOrdersQueryResponse) []servers.Order {
	response := make([]servers.Order, len(result))
	for i, o := range result {
		lineItems := make([]servers.OrderLineItem, len(o.LineItems))
		for j, li := range o.LineItems {
			lineItems[j] = servers.OrderLineItem{
				MenuId:   li.MenuID.Bytes(),
				Quantity: li.Quantity,
				Price:    formatMoney(li.Price),
			}
		}

		response[i] = servers.Order{
			Id:              o.ID.Bytes(),
			Type:            o.Type.String(),
			Status:          o.Status.String(),
			OrderDateTime:   o.OrderDateTime,
			DeliveryAddress: optionalString(o.DeliveryAddress),
			OrderTableId:    optionalUUID(o.OrderTableID),
			OrderLineItems:  lineItems,
		}
	}
	return response
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
