// ABOUTME: Pacer spaces consecutive provider requests to stay polite with upstream sites
// ABOUTME: Backed by a token bucket limiter with burst 1, one instance per search

package search

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultPoliteDelay is the pause between the end of one provider request and the start of the next
const DefaultPoliteDelay = 350 * time.Millisecond

// Pacer spaces outbound requests. Wait blocks before a request starts and
// Done marks the moment the request finished.
type Pacer interface {
	Wait(ctx context.Context) error
	Done()
}

// PacerFactory creates a pacer for a single search; pacers are never shared across requests
type PacerFactory func() Pacer

// IntervalPacer lets the first request through immediately. Every later
// request starts at least one full interval after the previous one finished,
// however long that request took.
type IntervalPacer struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewIntervalPacer creates a pacer with the given spacing
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	if interval <= 0 {
		return &IntervalPacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &IntervalPacer{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the interval since the previous Done has elapsed
func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Done restarts the interval at the current time with an empty bucket
func (p *IntervalPacer) Done() {
	if p.interval <= 0 {
		return
	}
	limiter := rate.NewLimiter(rate.Every(p.interval), 1)
	limiter.AllowN(time.Now(), 1)
	p.limiter = limiter
}

// IntervalPacerFactory returns a factory producing fresh interval pacers
func IntervalPacerFactory(interval time.Duration) PacerFactory {
	return func() Pacer {
		return NewIntervalPacer(interval)
	}
}
