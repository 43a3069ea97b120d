package ratelimit

import "time"

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock is injected so tests can move time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Unlimited admits every request. It backs RATE_LIMIT_ENABLED=false.
type Unlimited struct{}

func (Unlimited) Allow(string) bool { return true }
