package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"food-marketplace/internal/config"
	"food-marketplace/internal/logx"
	"food-marketplace/internal/metrics"
	"food-marketplace/internal/repository"
	"food-marketplace/internal/service/orderevents"
	"food-marketplace/internal/transport/kafka"
	"food-marketplace/internal/transport/rabbitmq"
)

var newKafkaConsumer = kafka.NewConsumer

// MustBuildWorker builds and returns the worker container. The worker never migrates.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.registry); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, nil); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildWorkerContainer builds and returns the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

type consumerIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Consumed *prometheus.CounterVec `name:"consumed_messages_total"`
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(reg prometheus.Registerer) consumedMessagesOut {
			return consumedMessagesOut{Vec: mustRegister(reg, metrics.NewConsumedMessagesTotal())}
		},
		repository.NewOrderRepo,
		repository.NewCourierRepo,
		func(log *repository.OrderRepo, couriers *repository.CourierRepo, timeout time.Duration, logger logx.Logger) *orderevents.Processor {
			return orderevents.NewProcessor(log, couriers, timeout, logger)
		},
		newOrderEventConsumer,
		newRabbitClient,
		func(c *rabbitmq.Client, in consumerIn) *rabbitmq.Consumer {
			consumer := rabbitmq.NewConsumer(c, makeTicketNotifications(in.Logger), in.Logger)
			consumer.OnMessage(func(result string) {
				in.Consumed.WithLabelValues("rabbitmq", result).Inc()
			})
			return consumer
		},
	)
}

func newOrderEventConsumer(p *orderevents.Processor, in consumerIn) (*kafka.Consumer, error) {
	k := in.Config.Kafka
	c, err := newKafkaConsumer(in.Logger, k.Brokers, k.GroupID, k.Topic, makeOrdersKafka(p))
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	c.OnMessage(func(result string) {
		in.Consumed.WithLabelValues("kafka", result).Inc()
	})
	return c, nil
}
