package resilience

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/carson-networks/transaction-server/internal/errcode"
)

var ErrPanic = errors.New("panic in guarded call")

// Guard runs calls for one logical operation through admission control and
// a circuit breaker. Validation and not-found errors pass through untouched
// and count as healthy calls; every other failure is logged and replaced
// with a service degraded error.
type Guard struct {
	name      string
	admission *admission
	breaker   *gobreaker.CircuitBreaker
	logger    logrus.FieldLogger
}

// NewGuard creates a standalone guard. onStateChange may be nil.
func NewGuard(name string, cfg Config, logger logrus.FieldLogger, onStateChange func(name string, from, to State)) *Guard {
	g := &Guard{
		name:      name,
		admission: newAdmission(cfg),
		logger:    logger,
	}

	settings := gobreaker.Settings{
		Name:        "transaction-" + name,
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures ||
				(counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureRatio)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errcode.IsBusiness(err)
		},
		OnStateChange: func(_ string, from gobreaker.State, to gobreaker.State) {
			g.logStateChange(from, to)
			if onStateChange != nil {
				onStateChange(name, convertGobreakerState(from), convertGobreakerState(to))
			}
		},
	}
	g.breaker = gobreaker.NewCircuitBreaker(settings)

	return g
}

// Execute runs fn under the guard.
func (g *Guard) Execute(ctx context.Context, fn func() (any, error)) (any, error) {
	release, err := g.admission.acquire(ctx)
	if err != nil {
		return nil, g.fallback(err)
	}
	defer release()

	result, err := g.breaker.Execute(func() (result any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		return fn()
	})
	if err == nil {
		return result, nil
	}
	if errcode.IsBusiness(err) {
		return nil, err
	}

	return nil, g.fallback(err)
}

// Run is Execute with a typed result.
func Run[T any](ctx context.Context, g *Guard, fn func() (T, error)) (T, error) {
	result, err := g.Execute(ctx, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

func (g *Guard) Name() string {
	return g.name
}

func (g *Guard) State() State {
	return convertGobreakerState(g.breaker.State())
}

func (g *Guard) Counts() Counts {
	counts := g.breaker.Counts()

	return Counts{
		Requests:             counts.Requests,
		TotalSuccesses:       counts.TotalSuccesses,
		TotalFailures:        counts.TotalFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  counts.ConsecutiveFailures,
	}
}

func (g *Guard) fallback(cause error) error {
	entry := g.logger.WithError(cause).WithField("operation", g.name)
	switch {
	case errors.Is(cause, gobreaker.ErrOpenState):
		entry.Warnf("Guard.%s.Fallback breaker open, request rejected", g.name)
	case errors.Is(cause, gobreaker.ErrTooManyRequests):
		entry.Warnf("Guard.%s.Fallback breaker half-open, too many probes", g.name)
	case errors.Is(cause, ErrRateLimited), errors.Is(cause, ErrConcurrencyLimit):
		entry.Warnf("Guard.%s.Fallback admission rejected", g.name)
	default:
		entry.Errorf("Guard.%s.Fallback call failed", g.name)
	}

	return errcode.Degraded(cause)
}

func (g *Guard) logStateChange(from gobreaker.State, to gobreaker.State) {
	entry := g.logger.WithField("operation", g.name)
	switch to {
	case gobreaker.StateOpen:
		entry.Errorf("Guard.%s.Breaker %s -> %s, requests will fast-fail", g.name, from, to)
	case gobreaker.StateHalfOpen:
		entry.Infof("Guard.%s.Breaker %s -> %s, probing recovery", g.name, from, to)
	default:
		entry.Infof("Guard.%s.Breaker %s -> %s", g.name, from, to)
	}
}
