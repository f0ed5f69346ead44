// Package servers holds the HTTP contract: the embedded OpenAPI document, its
// request and response types and the echo routing glue for ServerInterface.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLineItem defines model for NewOrderLineItem.
type NewOrderLineItem struct {
	MenuId   openapi_types.UUID `json:"menuId"`
	Quantity int64              `json:"quantity"`
	Price    string             `json:"price"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Type            string              `json:"type"`
	OrderLineItems  []NewOrderLineItem  `json:"orderLineItems"`
	DeliveryAddress *string             `json:"deliveryAddress,omitempty"`
	OrderTableId    *openapi_types.UUID `json:"orderTableId,omitempty"`
}

// OrderLineItem defines model for OrderLineItem.
type OrderLineItem struct {
	MenuId   openapi_types.UUID `json:"menuId"`
	Quantity int64              `json:"quantity"`
	Price    string             `json:"price"`
}

// Order defines model for Order.
type Order struct {
	Id              openapi_types.UUID  `json:"id"`
	Type            string              `json:"type"`
	Status          string              `json:"status"`
	OrderDateTime   time.Time           `json:"orderDateTime"`
	DeliveryAddress *string             `json:"deliveryAddress,omitempty"`
	OrderTableId    *openapi_types.UUID `json:"orderTableId,omitempty"`
	OrderLineItems  []OrderLineItem     `json:"orderLineItems"`
}

// ProductPrice defines model for ProductPrice.
type ProductPrice struct {
	Price string `json:"price"`
}

// Product defines model for Product.
type Product struct {
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Price string             `json:"price"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all orders with their line items
	// (GET /api/orders)
	GetOrders(ctx echo.Context) error
	// Create an order in WAITING status
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// (PUT /api/orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (PUT /api/orders/{orderId}/serve)
	ServeOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (PUT /api/orders/{orderId}/start-delivery)
	StartDelivery(ctx echo.Context, orderId openapi_types.UUID) error
	// (PUT /api/orders/{orderId}/complete-delivery)
	CompleteDelivery(ctx echo.Context, orderId openapi_types.UUID) error
	// (PUT /api/orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// Change a product price and hide menus that become overpriced
	// (PUT /api/products/{productId}/price)
	ChangeProductPrice(ctx echo.Context, productId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ServeOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ServeOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) StartDelivery(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.StartDelivery(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CompleteDelivery(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteDelivery(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ChangeProductPrice(ctx echo.Context) error {
	productId, err := bindUUIDPathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeProductPrice(ctx, productId)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/orders", wrapper.CreateOrder)
	router.PUT(baseURL+"/api/orders/:orderId/accept", wrapper.AcceptOrder)
	router.PUT(baseURL+"/api/orders/:orderId/serve", wrapper.ServeOrder)
	router.PUT(baseURL+"/api/orders/:orderId/start-delivery", wrapper.StartDelivery)
	router.PUT(baseURL+"/api/orders/:orderId/complete-delivery", wrapper.CompleteDelivery)
	router.PUT(baseURL+"/api/orders/:orderId/complete", wrapper.CompleteOrder)
	router.PUT(baseURL+"/api/products/:productId/price", wrapper.ChangeProductPrice)
}

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return openapiSpec
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi spec: %w", err)
	}
	return doc, nil
}
