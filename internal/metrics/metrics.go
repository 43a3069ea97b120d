package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPublishFailuresTotal returns a counter of messages that could not be handed to a broker, by destination
func NewPublishFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "broker_publish_failures_total",
		Help: "Total number of messages that could not be published",
	}, []string{"destination"})
}

// NewConsumedMessagesTotal returns a counter of messages consumed by the worker, by source and result
func NewConsumedMessagesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_consumed_messages_total",
		Help: "Total number of broker messages consumed by the worker",
	}, []string{"source", "result"})
}

// NewPublishRetriesTotal returns a counter of broker publish retries, by destination
func NewPublishRetriesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "broker_publish_retries_total",
		Help: "Total number of broker publish retries",
	}, []string{"destination"})
}
