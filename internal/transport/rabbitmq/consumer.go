package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// HandleFunc processes one ticket notification.
type HandleFunc func(context.Context, domain.TicketNotification) error

// Consumer reads ticket notifications from the notifications queue.
type Consumer struct {
	ch       channel
	handler  HandleFunc
	logger   logx.Logger
	prefetch int
	onMsg    func(result string)
}

// NewConsumer returns a Consumer reading over c. It returns nil for a nil client.
func NewConsumer(c *Client, h HandleFunc, logger logx.Logger) *Consumer {
	if c == nil {
		return nil
	}
	return &Consumer{ch: c.ch, handler: h, logger: logger, prefetch: 10}
}

// OnMessage registers a callback invoked with the outcome of every delivery.
func (c *Consumer) OnMessage(fn func(result string)) {
	if c != nil {
		c.onMsg = fn
	}
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("amqp qos: %w", err)
	}
	deliveries, err := c.ch.Consume(NotificationsQueue, "worker", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("amqp consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("notification deliveries closed: %w", amqp.ErrClosed)
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	var n domain.TicketNotification
	if err := json.Unmarshal(d.Body, &n); err != nil || n.TicketID <= 0 {
		c.logger.Warn("amqp bad notification payload", logx.Err(err))
		c.observe("skipped")
		_ = d.Nack(false, false)
		return
	}
	if err := c.handler(ctx, n); err != nil {
		c.logger.Error("amqp handle failed, requeue",
			logx.Int64("ticket_id", n.TicketID),
			logx.String("kind", n.Kind),
			logx.Err(err),
		)
		c.observe("retry")
		_ = d.Nack(false, true)
		return
	}
	c.observe("ok")
	_ = d.Ack(false)
}

func (c *Consumer) observe(result string) {
	if c.onMsg != nil {
		c.onMsg(result)
	}
}
