package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"food-marketplace/internal/domain"
)

// ErrNack is returned when the broker refuses a published message.
var ErrNack = errors.New("publish nack from broker")

// Notifier publishes ticket notifications to the fanout exchange.
// A nil *Notifier publishes nothing.
type Notifier struct {
	mu       sync.Mutex
	ch       channel
	confirms <-chan amqp.Confirmation
}

// NewNotifier returns a Notifier publishing over c. It returns nil for a nil client.
func NewNotifier(c *Client) *Notifier {
	if c == nil {
		return nil
	}
	return &Notifier{ch: c.ch, confirms: c.confirms}
}

// Notify publishes msg as a persistent JSON message and waits for the broker confirm.
func (n *Notifier) Notify(ctx context.Context, msg domain.TicketNotification) error {
	if n == nil {
		return nil
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	return n.publish(ctx, body)
}

func (n *Notifier) publish(ctx context.Context, body []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	tag := n.ch.GetNextPublishSeqNo()
	err := n.ch.PublishWithContext(ctx, NotificationsExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	if n.confirms == nil {
		return nil
	}
	for {
		select {
		case conf, ok := <-n.confirms:
			if !ok {
				return fmt.Errorf("confirm channel closed: %w", amqp.ErrClosed)
			}
			// confirms left over from publishes whose wait was cancelled
			if conf.DeliveryTag < tag {
				continue
			}
			if !conf.Ack {
				return ErrNack
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
