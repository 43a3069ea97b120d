package orderevents

import (
	"context"
	"errors"
	"time"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// Processor applies order events in the worker: it records every event in the
// tracking log and keeps courier availability in step with deliveries.
type Processor struct {
	log      EventLog
	couriers CourierAvailability
	factory  *actionFactory
	logger   logx.Logger
	timeout  time.Duration
}

// NewProcessor creates a Processor.
func NewProcessor(log EventLog, couriers CourierAvailability, timeout time.Duration, logger logx.Logger) *Processor {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		log:      log,
		couriers: couriers,
		logger:   logger,
		timeout:  timeout,
	}
	p.factory = newActionFactory(p.onPicked, p.onFinished)
	return p
}

// Handle processes a single order event. Events for unknown orders are dropped.
func (p *Processor) Handle(ctx context.Context, e domain.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.log.AppendEvent(ctx, e); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			p.logger.Warn("event for unknown order dropped", logx.Int64("order_id", e.OrderID))
			return nil
		}
		return err
	}

	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order event recorded",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", string(e.Status)),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPicked(ctx context.Context, e domain.OrderEvent) error {
	return p.setAvailability(ctx, e, false)
}

func (p *Processor) onFinished(ctx context.Context, e domain.OrderEvent) error {
	return p.setAvailability(ctx, e, true)
}

func (p *Processor) setAvailability(ctx context.Context, e domain.OrderEvent, available bool) error {
	if e.CourierID == nil {
		return nil
	}
	ok, err := p.couriers.SetAvailability(ctx, *e.CourierID, available)
	if err != nil {
		return err
	}
	if !ok {
		p.logger.Warn("courier not found",
			logx.Int64("order_id", e.OrderID),
			logx.Int64("courier_id", *e.CourierID),
		)
		return nil
	}
	p.logger.Info("courier availability updated",
		logx.String("event", "courier_availability"),
		logx.Int64("order_id", e.OrderID),
		logx.Int64("courier_id", *e.CourierID),
		logx.Bool("available", available),
	)
	return nil
}
