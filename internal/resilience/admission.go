package resilience

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrConcurrencyLimit = errors.New("too many concurrent calls")
)

// admission is the gate in front of the breaker: a token bucket plus an
// optional channel semaphore.
type admission struct {
	limiter        *rate.Limiter
	slots          chan struct{}
	acquireTimeout time.Duration
}

func newAdmission(cfg Config) *admission {
	a := &admission{
		limiter:        rate.NewLimiter(rate.Inf, 0),
		acquireTimeout: cfg.AcquireTimeout,
	}
	if cfg.RPS > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), max(cfg.Burst, 1))
	}
	if cfg.MaxConcurrent > 0 {
		a.slots = make(chan struct{}, cfg.MaxConcurrent)
	}
	return a
}

// acquire returns a release func that must be called exactly once when
// admitted. Without an acquire timeout nothing waits.
func (a *admission) acquire(ctx context.Context) (func(), error) {
	if a.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.acquireTimeout)
		defer cancel()

		if err := a.limiter.Wait(ctx); err != nil {
			return nil, ErrRateLimited
		}
	} else if !a.limiter.Allow() {
		return nil, ErrRateLimited
	}

	if a.slots == nil {
		return func() {}, nil
	}

	if a.acquireTimeout <= 0 {
		select {
		case a.slots <- struct{}{}:
			return func() { <-a.slots }, nil
		default:
			return nil, ErrConcurrencyLimit
		}
	}

	select {
	case a.slots <- struct{}{}:
		return func() { <-a.slots }, nil
	case <-ctx.Done():
		return nil, ErrConcurrencyLimit
	}
}
