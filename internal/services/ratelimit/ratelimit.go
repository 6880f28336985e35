// Package ratelimit counts requests per caller key against a per-minute quota.
package ratelimit

import (
	"context"
	"time"
)

// DefaultWindow is the period the quota applies to
const DefaultWindow = time.Minute

// Result is the outcome of one Allow call
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// RetryAfter is how long a denied caller should wait; zero when allowed
	RetryAfter time.Duration
	// ResetAfter is how long until the caller's full quota is available again
	ResetAfter time.Duration
}

// Limiter records one request for key and reports whether it is within quota.
// Increment-and-check is atomic per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
