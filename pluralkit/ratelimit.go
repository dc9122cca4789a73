package pluralkit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// The public API allows 2 requests per second per token:
// https://pluralkit.me/api/#rate-limiting
const (
	defaultRequestsPerSecond = 2
	defaultBurst             = 2
)

// newLimiter builds the per-client token bucket. Each client owns its own
// bucket so that clients with different tokens never share a quota window.
func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		perSecond = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// acquire blocks until a request permit is available. A wait cancelled
// through the context returns its reservation to the bucket, so cancelled
// callers never consume quota. Waiters are not served in FIFO order; the
// bucket only guarantees the throughput ceiling.
func (c *Client) acquire(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for request permit: %w", err)
	}
	return nil
}
