package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"food-marketplace/internal/auth"
	"food-marketplace/internal/config"
	"food-marketplace/internal/http/handlers"
	mw "food-marketplace/internal/http/middleware"
	"food-marketplace/internal/http/middleware/ratelimit"
	"food-marketplace/internal/http/pprofserver"
	"food-marketplace/internal/http/router"
	"food-marketplace/internal/logx"
	"food-marketplace/internal/repository"
	"food-marketplace/internal/service/account"
	"food-marketplace/internal/service/helpdesk"
	"food-marketplace/internal/service/order"
	"food-marketplace/internal/service/restaurant"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect  dbConnectFunc
	migrate    func(databaseURL string) error
	loadConfig func() (*config.Config, error)
	registry   *prometheus.Registry
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		loadConfig: config.Load,
		logFatalf:  log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithConfig sets the configuration loader
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithRegistry sets the Prometheus registry metrics are registered with and served from
func (b *ContainerBuilder) WithRegistry(reg *prometheus.Registry) *ContainerBuilder {
	b.registry = reg
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns the API container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.registry); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerAPIMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerPublishers(container); err != nil {
		return nil, fmt.Errorf("publishers: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the API container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	registry *prometheus.Registry,
) error {
	var (
		reg prometheus.Registerer = prometheus.DefaultRegisterer
		gat prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if registry != nil {
		reg, gat = registry, registry
	}
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
		func() prometheus.Registerer { return reg },
		func() prometheus.Gatherer { return gat },
		newDebugServer,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate func(string) error) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if migrate != nil && cfg.MigrateOnStart {
			if err := migrate(cfg.DB.MigrateURL()); err != nil {
				pool.Close()
				return nil, err
			}
			logger.Info("schema migrated")
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewAccountRepo,
		repository.NewRestaurantRepo,
		repository.NewOrderRepo,
		repository.NewTicketRepo,
		func(cfg *config.Config) *auth.BcryptHasher {
			return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
		},
		func(cfg *config.Config) (*auth.Tokens, error) {
			return auth.NewTokens(auth.TokenConfig{
				Secret: cfg.Auth.JWTSecret,
				Issuer: cfg.Auth.Issuer,
				TTL:    cfg.Auth.TokenTTL,
			})
		},
		func(repo *repository.AccountRepo, h *auth.BcryptHasher, t *auth.Tokens, timeout time.Duration, logger logx.Logger) *account.Service {
			return account.NewService(repo, h, t, timeout, logger)
		},
		func(repo *repository.RestaurantRepo, timeout time.Duration) *restaurant.Service {
			return restaurant.NewService(repo, timeout)
		},
		func(
			orders *repository.OrderRepo,
			restaurants *repository.RestaurantRepo,
			events order.EventPublisher,
			timeout time.Duration,
			logger logx.Logger,
		) *order.Service {
			return order.NewService(orders, restaurants, events, timeout, logger)
		},
		func(tickets *repository.TicketRepo, notifier helpdesk.Notifier, timeout time.Duration, logger logx.Logger) *helpdesk.Service {
			return helpdesk.NewService(tickets, notifier, timeout, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		func(logger logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
			return handlers.New(logger, pool)
		},
		func(logger logx.Logger, svc *account.Service) *handlers.AuthHandler {
			return handlers.NewAuthHandler(logger, svc)
		},
		func(logger logx.Logger, svc *restaurant.Service) *handlers.RestaurantHandler {
			return handlers.NewRestaurantHandler(logger, svc)
		},
		func(logger logx.Logger, svc *order.Service) *handlers.OrderHandler {
			return handlers.NewOrderHandler(logger, svc)
		},
		func(logger logx.Logger, svc *helpdesk.Service) *handlers.HelpdeskHandler {
			return handlers.NewHelpdeskHandler(logger, svc)
		},
		func(tokens *auth.Tokens, accounts *account.Service, logger logx.Logger) *mw.Authenticator {
			return mw.NewAuthenticator(tokens, accounts, logger)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}

type routerIn struct {
	dig.In

	Config        *config.Config
	Logger        logx.Logger
	Base          *handlers.Handlers
	Auth          *handlers.AuthHandler
	Restaurants   *handlers.RestaurantHandler
	Orders        *handlers.OrderHandler
	Helpdesk      *handlers.HelpdeskHandler
	Authenticator *mw.Authenticator
	RateLimit     *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:          in.Base,
		Auth:          in.Auth,
		Restaurants:   in.Restaurants,
		Orders:        in.Orders,
		Helpdesk:      in.Helpdesk,
		Authenticator: in.Authenticator,
		AuthRateLimit: in.RateLimit.Handler(),
		Logger:        in.Logger,
		Timeout:       in.Config.OperationTimeout + 2*time.Second,
	})
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

// newDebugServer returns a nil server when the debug port is 0.
func newDebugServer(cfg *config.Config, g prometheus.Gatherer) debugServerOut {
	if cfg.Debug.Port == 0 {
		return debugServerOut{}
	}
	return debugServerOut{Server: pprofserver.New(cfg.Debug.Port, pprofserver.Config{
		User:     cfg.Debug.User,
		Pass:     cfg.Debug.Pass,
		Gatherer: g,
	})}
}
