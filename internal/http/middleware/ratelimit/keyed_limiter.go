package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config stores KeyedLimiter settings.
type Config struct {
	Limit   int           // requests allowed per Window, also the burst
	Window  time.Duration // refill period for Limit tokens
	TTL     time.Duration // idle keys are dropped after TTL (0 keeps them)
	MaxKeys int           // distinct keys tracked at once (0 is unbounded)
}

// KeyedLimiter keeps one token bucket per key.
type KeyedLimiter struct {
	cfg         Config
	every       rate.Limit
	clock       Clock
	mu          sync.Mutex
	keys        map[string]*entry
	lastCleanup time.Time
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter creates a limiter allowing cfg.Limit requests per cfg.Window per key.
func NewKeyedLimiter(clock Clock, cfg Config) *KeyedLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Second
	}
	if cfg.MaxKeys < 0 {
		cfg.MaxKeys = 0
	}
	return &KeyedLimiter{
		cfg:   cfg,
		every: rate.Every(cfg.Window / time.Duration(cfg.Limit)),
		clock: clock,
		keys:  make(map[string]*entry),
	}
}

// Allow reports whether key may proceed now. New keys are refused once
// MaxKeys keys are tracked.
func (l *KeyedLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	l.maybeCleanup(now)
	e := l.keys[key]
	if e == nil {
		if l.cfg.MaxKeys > 0 && len(l.keys) >= l.cfg.MaxKeys {
			l.mu.Unlock()
			return false
		}
		e = &entry{lim: rate.NewLimiter(l.every, l.cfg.Limit)}
		l.keys[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.lim.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

// maybeCleanup runs with l.mu held.
func (l *KeyedLimiter) maybeCleanup(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now

	for k, e := range l.keys {
		if now.Sub(e.lastSeen) > l.cfg.TTL {
			delete(l.keys, k)
		}
	}
}
