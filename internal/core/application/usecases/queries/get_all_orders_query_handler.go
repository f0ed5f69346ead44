package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads orders and their line items with two queries.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns every order. The listing order is unspecified.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.readOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.readLineItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) readOrders(ctx context.Context) ([]GetAllOrdersQueryResponse, map[uuid.UUID]int, error) {
	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			status,
			order_date_time,
			delivery_address,
			order_table_id
		FROM orders
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       GetAllOrdersQueryResponse
			id         uuid.UUID
			orderType  int
			status     int
			tableID    uuid.NullUUID
			addressRaw *string
		)

		if err = rows.Scan(&id, &orderType, &status, &resp.OrderDateTime, &addressRaw, &tableID); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.ID = orderID
		resp.Type = order.Type(orderType)
		resp.Status = order.Status(status)
		if addressRaw != nil {
			resp.DeliveryAddress = *addressRaw
		}

		if tableID.Valid {
			tID, tableErr := kernel.UUIDFromBytes(tableID.UUID[:])
			if tableErr != nil {
				return nil, nil, tableErr
			}
			resp.OrderTableID = &tID
		}

		resp.LineItems = make([]GetAllOrdersLineItemResponse, 0)
		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetAllOrdersQueryHandler) readLineItems(
	ctx context.Context,
	orders []GetAllOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			quantity,
			price
		FROM order_line_items
		ORDER BY order_id, seq
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			menuID   uuid.UUID
			quantity int64
			price    decimal.Decimal
		)

		if err = rows.Scan(&orderID, &menuID, &quantity, &price); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		mID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return idErr
		}

		orders[i].LineItems = append(orders[i].LineItems, GetAllOrdersLineItemResponse{
			MenuID:   mID,
			Quantity: quantity,
			Price:    price,
		})
	}

	return rows.Err()
}
