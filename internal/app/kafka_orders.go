package app

import (
	"context"
	"errors"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
	"food-marketplace/internal/transport/kafka"
	"food-marketplace/internal/transport/rabbitmq"
)

// orderEventHandler is the part of the order event processor the Kafka consumer drives.
type orderEventHandler interface {
	Handle(ctx context.Context, e domain.OrderEvent) error
}

// makeOrdersKafka adapts the processor to the consumer. Invalid events can never
// succeed, so they are marked and skipped rather than redelivered.
func makeOrdersKafka(p orderEventHandler) kafka.HandleFunc {
	return func(ctx context.Context, e domain.OrderEvent) error {
		err := p.Handle(ctx, e)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}

func makeTicketNotifications(logger logx.Logger) rabbitmq.HandleFunc {
	return func(_ context.Context, n domain.TicketNotification) error {
		logger.Info("ticket notification",
			logx.String("kind", n.Kind),
			logx.Int64("ticket_id", n.TicketID),
			logx.String("email", n.Email),
			logx.String("subject", n.Subject),
			logx.String("status", string(n.Status)),
			logx.String("priority", string(n.Priority)),
		)
		return nil
	}
}
