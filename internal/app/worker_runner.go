package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"food-marketplace/internal/logx"
	"food-marketplace/internal/transport/kafka"
	"food-marketplace/internal/transport/rabbitmq"
)

// WorkerRunner runs the event consumers
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the consumers using the provided DI container and blocks until shutdown
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx    context.Context
	Pool   *pgxpool.Pool
	Logger logx.Logger
	Kafka  *kafka.Consumer
	Rabbit *rabbitmq.Consumer
	Client *rabbitmq.Client
	Debug  *http.Server `name:"debug_server"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(in workerIn) error {
	if in.Kafka == nil && in.Rabbit == nil {
		return errors.New("no consumers configured: set KAFKA_* or RABBITMQ_*")
	}
	defer closeWorker(in)

	ctx, stop := context.WithCancel(in.Ctx)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	// Either consumer stopping ends the worker.
	if in.Kafka != nil {
		g.Go(func() error {
			defer stop()
			return in.Kafka.Run(ctx)
		})
	}
	if in.Rabbit != nil {
		g.Go(func() error {
			defer stop()
			return in.Rabbit.Run(ctx)
		})
	}
	if in.Debug != nil {
		g.Go(func() error {
			if err := in.Debug.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("debug server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			gracefulShutdown(in.Logger, shutdownTimeout, in.Debug)
			return nil
		})
	}

	in.Logger.Info("worker started",
		logx.Bool("kafka", in.Kafka != nil),
		logx.Bool("rabbitmq", in.Rabbit != nil),
	)
	return g.Wait()
}

func closeWorker(in workerIn) {
	if err := in.Kafka.Close(); err != nil {
		in.Logger.Error("kafka close error", logx.Err(err))
	}
	in.Client.Close()
	if in.Pool != nil {
		in.Pool.Close()
	}
	in.Logger.Info("worker stopped")
}
