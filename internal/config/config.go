package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores settings shared by the API and the worker.
type Config struct {
	Port             int           `env:"PORT" envDefault:"8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"3s"`
	MigrateOnStart   bool          `env:"MIGRATE_ON_START" envDefault:"true"`

	DB        DB        `envPrefix:"POSTGRES_"`
	Auth      Auth      `envPrefix:"AUTH_"`
	Admin     Admin     `envPrefix:"ADMIN_"`
	Kafka     Kafka     `envPrefix:"KAFKA_"`
	RabbitMQ  RabbitMQ  `envPrefix:"RABBITMQ_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
	Debug     Debug     `envPrefix:"DEBUG_"`
	Retry     Retry     `envPrefix:"PUBLISH_RETRY_"`
}

// DB holds PostgreSQL connection settings.
type DB struct {
	Host    string `env:"HOST" envDefault:"127.0.0.1"`
	Port    string `env:"PORT" envDefault:"5432"`
	User    string `env:"USER" envDefault:"myuser"`
	Pass    string `env:"PASSWORD" envDefault:"mypassword"`
	Name    string `env:"DB" envDefault:"food_marketplace"`
	SSLMode string `env:"SSLMODE" envDefault:"disable"`
}

// DSN returns a postgres:// connection string understood by pgx.
func (d DB) DSN() string {
	return d.url("postgres")
}

// MigrateURL returns the same connection string with the scheme expected by the
// golang-migrate pgx/v5 driver.
func (d DB) MigrateURL() string {
	return d.url("pgx5")
}

func (d DB) url(scheme string) string {
	u := url.URL{
		Scheme: scheme,
		User:   url.UserPassword(d.User, d.Pass),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Auth configures password hashing and bearer tokens.
type Auth struct {
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"local-dev-secret"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"food-marketplace"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"12"`
}

// Admin describes the administrator account ensured at API start-up.
// Bootstrap is skipped unless both Email and Password are set.
type Admin struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"Administrator"`
}

// Enabled reports whether an admin account should be bootstrapped.
func (a Admin) Enabled() bool {
	return strings.TrimSpace(a.Email) != "" && a.Password != ""
}

// Kafka configures order event publishing and consumption.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"ORDERS_TOPIC" envDefault:"orders.events"`
	GroupID string   `env:"GROUP_ID" envDefault:"food-marketplace-worker"`
}

// Enabled reports whether brokers and a topic are configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && strings.TrimSpace(k.Topic) != ""
}

// RabbitMQ configures help-desk notifications. An empty host disables them.
type RabbitMQ struct {
	Host  string `env:"HOST"`
	Port  int    `env:"PORT" envDefault:"5672"`
	User  string `env:"USER" envDefault:"guest"`
	Pass  string `env:"PASSWORD" envDefault:"guest"`
	VHost string `env:"VHOST" envDefault:"/"`
}

// Enabled reports whether a broker host is configured.
func (r RabbitMQ) Enabled() bool {
	return strings.TrimSpace(r.Host) != ""
}

// URL returns the AMQP connection URL.
func (r RabbitMQ) URL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(r.User, r.Pass),
		Host:   net.JoinHostPort(r.Host, strconv.Itoa(r.Port)),
		Path:   "/" + strings.TrimPrefix(r.VHost, "/"),
	}
	return u.String()
}

// RateLimit configures the per-IP limiter on authentication routes.
type RateLimit struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Limit   int           `env:"LIMIT" envDefault:"20"`
	Window  time.Duration `env:"WINDOW" envDefault:"1m"`
	TTL     time.Duration `env:"TTL" envDefault:"10m"`
	MaxKeys int           `env:"MAX_KEYS" envDefault:"10000"`
}

// Retry bounds how broker publishes are retried before giving up.
type Retry struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	BaseDelay   time.Duration `env:"BASE_DELAY" envDefault:"50ms"`
	MaxDelay    time.Duration `env:"MAX_DELAY" envDefault:"500ms"`
}

// Debug configures the pprof/metrics listener. Port 0 disables it.
type Debug struct {
	Port int    `env:"PORT" envDefault:"6060"`
	User string `env:"USER"`
	Pass string `env:"PASSWORD"`
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.IntVar(&cfg.Debug.Port, "debug-port", cfg.Debug.Port, "pprof/metrics port (0 disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Debug.Port < 0 || c.Debug.Port > 65535 {
		return fmt.Errorf("invalid debug port: %d", c.Debug.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid postgres port: %q", c.DB.Port)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("AUTH_JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid token ttl: %s", c.Auth.TokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("invalid bcrypt cost: %d", c.Auth.BcryptCost)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("invalid rate limit: %d per %s", c.RateLimit.Limit, c.RateLimit.Window)
	}
	return nil
}
