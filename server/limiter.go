package server

import (
	"context"
	"sync"
	"time"

	"github.com/giansalex/cw-lockbox/logger"
	"golang.org/x/time/rate"
)

// RateLimiter defines the interface for request rate limiting. Limits are
// tracked per RPC method so a burst of list queries cannot starve releases.
type RateLimiter interface {
	Allow(method string) bool
	Wait(ctx context.Context, method string) error
}

// TokenBucketRateLimiter implements per-method rate limiting using token
// buckets. Every method gets its own bucket with the same rate and burst,
// created lazily on first use.
type TokenBucketRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter

	rps    rate.Limit
	burst  int
	logger logger.Logger
}

// NewTokenBucketRateLimiter creates a new token bucket rate limiter allowing
// maxRequests per window, per method.
func NewTokenBucketRateLimiter(maxRequests, burst int, window time.Duration, logger logger.Logger) *TokenBucketRateLimiter {
	var rps rate.Limit
	if window.Seconds() > 0 {
		rps = rate.Limit(float64(maxRequests) / window.Seconds())
	} else {
		rps = rate.Inf
		logger.Warnw("Rate limit window is zero or negative, disabling rate limiter.", "window", window)
	}
	if burst <= 0 {
		burst = 1
		if rps != rate.Inf {
			logger.Warnw("Rate limit burst is zero or negative, setting to 1.", "burst", burst)
		}
	}

	return &TokenBucketRateLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
		burst:   burst,
		logger:  logger,
	}
}

func (rl *TokenBucketRateLimiter) bucket(method string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.buckets[method]
	if !ok {
		limiter = rate.NewLimiter(rl.rps, rl.burst)
		rl.buckets[method] = limiter
	}
	return limiter
}

// Allow returns true if a request for the given method can proceed immediately.
func (rl *TokenBucketRateLimiter) Allow(method string) bool {
	return rl.bucket(method).Allow()
}

// Wait blocks until a request for the given method can proceed or the context
// is cancelled.
func (rl *TokenBucketRateLimiter) Wait(ctx context.Context, method string) error {
	return rl.bucket(method).Wait(ctx)
}
