// Package ratelimit paces URL fetches.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter allows one fetch immediately and spaces later fetches by the
// configured rate.
type Limiter struct {
	limiter *rate.Limiter
}

// New uses 0 or negative fetchesPerSecond for no rate limiting.
func New(fetchesPerSecond float64) *Limiter {
	if fetchesPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(fetchesPerSecond), 1)}
}

// Wait blocks until the next fetch may start or ctx is done. It fails early
// when ctx would expire before the wait is over.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Limit returns the configured rate, 0 meaning unlimited.
func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}
