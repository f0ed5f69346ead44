// Package kitchenriders dispatches accepted delivery orders to the external
// rider service over RabbitMQ.
package kitchenriders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrPublishNacked is returned when the broker refuses a message.
	ErrPublishNacked = errors.New("publish NACK from broker")
	// ErrConfirmsClosed is returned once the channel stops delivering confirmations.
	ErrConfirmsClosed = errors.New("confirmation channel closed")
)

type channel interface {
	GetNextPublishSeqNo() uint64
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Config describes the broker connection and the exchange requests go to.
type Config struct {
	URL      string
	Exchange string
}

// Client is a confirm-mode channel. Each publish waits for the confirmation
// carrying its own delivery tag. Confirmations are drained in the background.
type Client struct {
	conn *amqp.Connection
	ch   channel

	// mu keeps the sequence number read and the publish together.
	mu sync.Mutex

	pendingMu sync.Mutex
	pending   map[uint64]chan amqp.Confirmation
	closed    bool
}

// Dial connects, declares the durable direct exchange and switches the
// channel into confirm mode.
func Dial(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 64))

	c := newClient(ch, acks)
	c.conn = conn
	return c, nil
}

func newClient(ch channel, acks <-chan amqp.Confirmation) *Client {
	c := &Client{ch: ch, pending: make(map[uint64]chan amqp.Confirmation)}
	if acks != nil {
		go c.routeConfirms(acks)
	}
	return c
}

// routeConfirms hands each confirmation to the publish waiting on its tag.
// Tags nobody waits for, such as those of timed-out publishes, are dropped.
func (c *Client) routeConfirms(acks <-chan amqp.Confirmation) {
	for conf := range acks {
		c.pendingMu.Lock()
		waiter, ok := c.pending[conf.DeliveryTag]
		delete(c.pending, conf.DeliveryTag)
		c.pendingMu.Unlock()

		if ok {
			waiter <- conf
		}
	}

	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	c.closed = true
	for tag, waiter := range c.pending {
		close(waiter)
		delete(c.pending, tag)
	}
}

func (c *Client) forget(tag uint64) {
	c.pendingMu.Lock()
	delete(c.pending, tag)
	c.pendingMu.Unlock()
}

// Ping reports whether the connection is still open.
func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Publish sends a persistent JSON message and waits for the broker's ack.
func (c *Client) Publish(ctx context.Context, exchange, key string, body []byte) error {
	tag, waiter, err := c.publish(ctx, exchange, key, body)
	if err != nil {
		return err
	}

	select {
	case conf, ok := <-waiter:
		if !ok {
			return ErrConfirmsClosed
		}
		if !conf.Ack {
			return ErrPublishNacked
		}
		return nil
	case <-ctx.Done():
		c.forget(tag)
		return ctx.Err()
	}
}

func (c *Client) publish(ctx context.Context, exchange, key string, body []byte) (uint64, <-chan amqp.Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tag := c.ch.GetNextPublishSeqNo()
	waiter := make(chan amqp.Confirmation, 1)

	c.pendingMu.Lock()
	if c.closed {
		c.pendingMu.Unlock()
		return 0, nil, ErrConfirmsClosed
	}
	c.pending[tag] = waiter
	c.pendingMu.Unlock()

	if err := c.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now(),
		Body:         body,
	}); err != nil {
		c.forget(tag)
		return 0, nil, err
	}

	return tag, waiter, nil
}

func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
