// Package orderrepo persists order aggregates in the orders and
// order_line_items tables.
package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Line items are stored in order, keyed by Seq.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Type            int           `gorm:"not null"`
	Status          int           `gorm:"not null;index"`
	OrderDateTime   time.Time     `gorm:"not null"`
	DeliveryAddress *string       `gorm:"type:varchar(255)"`
	OrderTableID    *uuid.UUID    `gorm:"type:uuid;index"`
	LineItems       []LineItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one order_line_items row.
type LineItemDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq      int             `gorm:"primaryKey;autoIncrement:false"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity int64           `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var address *string
	if o.DeliveryAddress() != "" {
		a := o.DeliveryAddress()
		address = &a
	}

	var tableID *uuid.UUID
	if id := o.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := o.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			OrderID:  o.ID().Bytes(),
			Seq:      i,
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Type:            int(o.Type()),
		Status:          int(o.Status()),
		OrderDateTime:   o.OrderDateTime(),
		DeliveryAddress: address,
		OrderTableID:    tableID,
		LineItems:       lineItems,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		menuID, menuErr := kernel.UUIDFromBytes(item.MenuID[:])
		if menuErr != nil {
			return nil, menuErr
		}

		price, priceErr := kernel.NewMoney(item.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		li, itemErr := order.NewLineItem(menuID, item.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, li)
	}

	var address string
	if dto.DeliveryAddress != nil {
		address = *dto.DeliveryAddress
	}

	var tableID *kernel.UUID
	if dto.OrderTableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.OrderTableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.Type),
		order.Status(dto.Status),
		dto.OrderDateTime,
		lineItems,
		address,
		tableID,
	)
}
