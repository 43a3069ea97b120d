package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"food-marketplace/internal/config"
	"food-marketplace/internal/logx"
	"food-marketplace/internal/service/account"
	"food-marketplace/internal/transport/kafka"
	"food-marketplace/internal/transport/rabbitmq"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the API server
type Runner struct {
	runFn     func(*dig.Container) error
	logFatalf func(string, ...interface{})
}

// NewRunner returns a new Runner
func NewRunner(logFatalf func(string, ...interface{})) *Runner {
	return &Runner{runFn: run, logFatalf: logFatalf}
}

// MustRun starts the HTTP servers using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	if err := r.runFn(container); err != nil && !errors.Is(err, context.Canceled) {
		r.logFatalf("run error: %v", err)
	}
}

type apiIn struct {
	dig.In

	Ctx      context.Context
	Config   *config.Config
	Logger   logx.Logger
	Server   *http.Server
	Debug    *http.Server `name:"debug_server"`
	Pool     *pgxpool.Pool
	Accounts *account.Service
	Producer *kafka.Producer
	Rabbit   *rabbitmq.Client
}

func run(container *dig.Container) error {
	return container.Invoke(apiRun)
}

func apiRun(in apiIn) error {
	defer closeAPI(in)

	if in.Config.Admin.Enabled() {
		err := in.Accounts.EnsureAdmin(in.Ctx, account.AdminSeed{
			Name:     in.Config.Admin.Name,
			Email:    in.Config.Admin.Email,
			Password: in.Config.Admin.Password,
		})
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	errCh := make(chan error, 2)
	startServer(in.Server, "api", in.Logger, errCh)
	startServer(in.Debug, "debug", in.Logger, errCh)

	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down service-api")
	case err := <-errCh:
		gracefulShutdown(in.Logger, shutdownTimeout, in.Server, in.Debug)
		return err
	}
	gracefulShutdown(in.Logger, shutdownTimeout, in.Server, in.Debug)
	return nil
}

// startServer serves srv in the background; a nil srv is skipped.
func startServer(srv *http.Server, name string, logger logx.Logger, errCh chan<- error) {
	if srv == nil {
		return
	}
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}()
}

func gracefulShutdown(logger logx.Logger, timeout time.Duration, servers ...*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for _, srv := range servers {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
		}
	}
}

func closeAPI(in apiIn) {
	if err := in.Producer.Close(); err != nil {
		in.Logger.Error("kafka producer close error", logx.Err(err))
	}
	in.Rabbit.Close()
	if in.Pool != nil {
		in.Pool.Close()
	}
}
