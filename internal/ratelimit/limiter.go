// Package ratelimit wraps a token-bucket limiter for ADSC's outbound
// notification webhook, the same way the teacher wraps one for
// outbound RPC calls. The admin API does not use it; internal/admin
// has its own per-route limiter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/metrics"
	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket rate limiter for one named route.
type Limiter struct {
	limiter *rate.Limiter
	route   string
}

// NewLimiter creates a rate limiter that allows rps requests per
// second with a burst capacity of burst tokens, labelled route for
// metrics.
func NewLimiter(rps float64, burst int, route string) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		route:   route,
	}
}

// Allow reports whether a request for route may proceed right now,
// without blocking. Rejections increment AdminRateLimitedTotal.
func (l *Limiter) Allow() bool {
	if l.limiter.Allow() {
		return true
	}
	metrics.AdminRateLimitedTotal.WithLabelValues(l.route).Inc()
	return false
}

// Wait blocks until the limiter allows one event, or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	r := l.limiter.Reserve()
	if !r.OK() {
		return fmt.Errorf("ratelimit: cannot reserve token for %s", l.route)
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
