package kitchenriders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"github.com/shopspring/decimal"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher delivers a message body to an exchange. *Client implements it.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte) error
}

// DeliveryRequest is the message the rider service consumes.
type DeliveryRequest struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Address string          `json:"address"`
}

var _ ports.DeliveryDispatcher = (*Dispatcher)(nil)

type Dispatcher struct {
	publisher  Publisher
	exchange   string
	routingKey string
	timeout    time.Duration
	logger     *slog.Logger
}

func NewDispatcher(publisher Publisher, exchange, routingKey string, logger *slog.Logger) (*Dispatcher, error) {
	if publisher == nil {
		return nil, fmt.Errorf("publisher is required")
	}
	if exchange == "" {
		return nil, fmt.Errorf("exchange is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		publisher:  publisher,
		exchange:   exchange,
		routingKey: routingKey,
		timeout:    defaultPublishTimeout,
		logger:     logger.With("component", "kitchenriders"),
	}, nil
}

// RequestDelivery publishes the request and returns once the broker confirmed it.
func (d *Dispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amountDue decimal.Decimal,
	address string,
) error {
	body, err := json.Marshal(DeliveryRequest{
		OrderID: orderID.String(),
		Amount:  amountDue,
		Address: address,
	})
	if err != nil {
		return fmt.Errorf("marshal delivery request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err = d.publisher.Publish(ctx, d.exchange, d.routingKey, body); err != nil {
		d.logger.Error("delivery request failed",
			"order_id", orderID.String(),
			"exchange", d.exchange,
			"error", err,
		)
		return fmt.Errorf("request delivery for order %s: %w", orderID, err)
	}

	d.logger.Info("delivery requested",
		"order_id", orderID.String(),
		"amount", amountDue.String(),
	)
	return nil
}
