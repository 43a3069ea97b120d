package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"food-marketplace/internal/config"
	"food-marketplace/internal/http/middleware/ratelimit"
	"food-marketplace/internal/logx"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.Unlimited{}
	}
	return ratelimit.NewKeyedLimiter(clock, ratelimit.Config{
		Limit:   rl.Limit,
		Window:  rl.Window,
		TTL:     rl.TTL,
		MaxKeys: rl.MaxKeys,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	rl := in.Config.RateLimit
	var retryAfter time.Duration
	if rl.Limit > 0 {
		retryAfter = rl.Window / time.Duration(rl.Limit)
	}
	return ratelimit.New(in.Logger, in.Counter, in.Limiter, retryAfter)
}
