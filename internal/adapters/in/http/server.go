package http

import (
	"context"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

// OrderStatusHandler is implemented by every order transition handler.
type OrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
}

type ChangeProductPriceHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeProductPriceCommand) (*product.Product, error)
}

type GetAllOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error)
}

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder        CreateOrderHandler
	AcceptOrder        OrderStatusHandler
	ServeOrder         OrderStatusHandler
	StartDelivery      OrderStatusHandler
	CompleteDelivery   OrderStatusHandler
	CompleteOrder      OrderStatusHandler
	ChangeProductPrice ChangeProductPriceHandler
	GetAllOrders       GetAllOrdersHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	result, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(result))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// AcceptOrder handles PUT /api/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeOrderStatus(ctx, orderID, s.handlers.AcceptOrder)
}

// ServeOrder handles PUT /api/orders/{orderId}/serve.
func (s *Server) ServeOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeOrderStatus(ctx, orderID, s.handlers.ServeOrder)
}

// StartDelivery handles PUT /api/orders/{orderId}/start-delivery.
func (s *Server) StartDelivery(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeOrderStatus(ctx, orderID, s.handlers.StartDelivery)
}

// CompleteDelivery handles PUT /api/orders/{orderId}/complete-delivery.
func (s *Server) CompleteDelivery(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeOrderStatus(ctx, orderID, s.handlers.CompleteDelivery)
}

// CompleteOrder handles PUT /api/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	return s.changeOrderStatus(ctx, orderID, s.handlers.CompleteOrder)
}

// ChangeProductPrice handles PUT /api/products/{productId}/price.
func (s *Server) ChangeProductPrice(ctx echo.Context, productID openapi_types.UUID) error {
	var body servers.ProductPrice
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return respondError(ctx, err)
	}
	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd, err := commands.NewChangeProductPriceCommand(id, price)
	if err != nil {
		return respondError(ctx, err)
	}

	p, err := s.handlers.ChangeProductPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Product{
		Id:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: formatMoney(p.Price().Decimal()),
	})
}

func (s *Server) changeOrderStatus(ctx echo.Context, orderID openapi_types.UUID, handler OrderStatusHandler) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return respondError(ctx, err)
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := handler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}
