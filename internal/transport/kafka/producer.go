package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes order events to a Kafka topic, keyed by order id.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
}

// NewProducer creates a Producer. It returns (nil, nil) when Kafka is not configured;
// a nil *Producer publishes nothing.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		logger.Warn("kafka producer disabled: brokers or topic not set")
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p, topic: topic, logger: logger}, nil
}

// Publish sends e synchronously.
func (p *Producer) Publish(ctx context.Context, e domain.OrderEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(FromDomain(e))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(e.OrderID, 10)),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		return fmt.Errorf("send order event %d: %w", e.OrderID, err)
	}
	p.logger.Debug("order event published",
		logx.Int64("order_id", e.OrderID),
		logx.String("status", string(e.Status)),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the underlying producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
