package app

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"food-marketplace/internal/config"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
	"food-marketplace/internal/metrics"
	"food-marketplace/internal/service/helpdesk"
	"food-marketplace/internal/service/order"
	"food-marketplace/internal/transport/kafka"
	"food-marketplace/internal/transport/rabbitmq"
	"food-marketplace/internal/transport/retry"
)

var (
	newKafkaProducer = kafka.NewProducer
	dialRabbitMQ     = rabbitmq.Dial
)

// mustRegister registers c, or returns the collector already registered under the same descriptor.
func mustRegister[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

type rateLimitCounterOut struct {
	dig.Out

	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
}

type publishFailuresOut struct {
	dig.Out

	Vec *prometheus.CounterVec `name:"publish_failures_total"`
}

type publishRetriesOut struct {
	dig.Out

	Vec *prometheus.CounterVec `name:"publish_retries_total"`
}

type consumedMessagesOut struct {
	dig.Out

	Vec *prometheus.CounterVec `name:"consumed_messages_total"`
}

func registerAPIMetrics(container *dig.Container) error {
	return provideAll(container,
		func(reg prometheus.Registerer) rateLimitCounterOut {
			return rateLimitCounterOut{Counter: mustRegister(reg, metrics.NewRateLimitExceededTotal())}
		},
		newPublishFailures,
		func(reg prometheus.Registerer) publishRetriesOut {
			return publishRetriesOut{Vec: mustRegister(reg, metrics.NewPublishRetriesTotal())}
		},
	)
}

func newPublishFailures(reg prometheus.Registerer) publishFailuresOut {
	return publishFailuresOut{Vec: mustRegister(reg, metrics.NewPublishFailuresTotal())}
}

type publisherIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Failures *prometheus.CounterVec `name:"publish_failures_total"`
	Retries  *prometheus.CounterVec `name:"publish_retries_total" optional:"true"`
}

func (in publisherIn) retrier(destination string) *retry.Retrier {
	var retries prometheus.Counter
	if in.Retries != nil {
		retries = in.Retries.WithLabelValues(destination)
	}
	rc := in.Config.Retry
	return retry.New(destination, in.Logger, retries, retry.Config{
		MaxAttempts: rc.MaxAttempts,
		BaseDelay:   rc.BaseDelay,
		MaxDelay:    rc.MaxDelay,
	})
}

// retryingEvents retries order event publishing on transient broker errors.
// failures counts publishes that still failed once retries ran out.
type retryingEvents struct {
	next     order.EventPublisher
	retry    *retry.Retrier
	failures prometheus.Counter
}

func (e retryingEvents) Publish(ctx context.Context, ev domain.OrderEvent) error {
	err := e.retry.Do(ctx, func(ctx context.Context) error { return e.next.Publish(ctx, ev) })
	if err != nil {
		e.failures.Inc()
	}
	return err
}

type retryingNotifier struct {
	next     helpdesk.Notifier
	retry    *retry.Retrier
	failures prometheus.Counter
}

func (n retryingNotifier) Notify(ctx context.Context, msg domain.TicketNotification) error {
	err := n.retry.Do(ctx, func(ctx context.Context) error { return n.next.Notify(ctx, msg) })
	if err != nil {
		n.failures.Inc()
	}
	return err
}

// registerPublishers provides the Kafka producer and the RabbitMQ notifier.
// A broker that cannot be reached at start-up is logged and left disabled.
func registerPublishers(container *dig.Container) error {
	return provideAll(container,
		newOrderEventProducer,
		newRabbitClient,
		rabbitmq.NewNotifier,
		newEventPublisher,
		newTicketNotifier,
	)
}

// newEventPublisher returns nil when Kafka is disabled so the order service skips publishing.
func newEventPublisher(p *kafka.Producer, in publisherIn) order.EventPublisher {
	if p == nil {
		return nil
	}
	return retryingEvents{next: p, retry: in.retrier("kafka"), failures: in.Failures.WithLabelValues("kafka")}
}

func newTicketNotifier(n *rabbitmq.Notifier, in publisherIn) helpdesk.Notifier {
	if n == nil {
		return nil
	}
	return retryingNotifier{next: n, retry: in.retrier("rabbitmq"), failures: in.Failures.WithLabelValues("rabbitmq")}
}

func newOrderEventProducer(in publisherIn) *kafka.Producer {
	if !in.Config.Kafka.Enabled() {
		in.Logger.Info("kafka disabled: order events will not be published")
		return nil
	}
	p, err := newKafkaProducer(in.Logger, in.Config.Kafka.Brokers, in.Config.Kafka.Topic)
	if err != nil {
		in.Logger.Warn("kafka producer unavailable, order events disabled", logx.Err(err))
		return nil
	}
	return p
}

func newRabbitClient(cfg *config.Config, logger logx.Logger) *rabbitmq.Client {
	if !cfg.RabbitMQ.Enabled() {
		logger.Info("rabbitmq disabled: ticket notifications are off")
		return nil
	}
	c, err := dialRabbitMQ(cfg.RabbitMQ.URL())
	if err != nil {
		logger.Warn("rabbitmq unavailable, ticket notifications disabled", logx.Err(err))
		return nil
	}
	return c
}
