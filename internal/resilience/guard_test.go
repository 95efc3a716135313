package resilience

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transaction-server/internal/errcode"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() Config {
	return Config{
		HalfOpenRequests:    1,
		Interval:            0,
		OpenTimeout:         50 * time.Millisecond,
		ConsecutiveFailures: 3,
		FailureRatio:        1,
		MinRequests:         100,
	}
}

func failing() (any, error) {
	return nil, errors.New("backend unavailable")
}

func TestGuard_Success(t *testing.T) {
	guard := NewGuard("create", testConfig(), quietLogger(), nil)

	result, err := guard.Execute(context.Background(), func() (any, error) {
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, StateClosed, guard.State())
	assert.Equal(t, uint32(1), guard.Counts().TotalSuccesses)
}

func TestGuard_FailureBecomesDegraded(t *testing.T) {
	guard := NewGuard("create", testConfig(), quietLogger(), nil)

	_, err := guard.Execute(context.Background(), failing)

	coded, ok := errcode.As(err)
	require.True(t, ok)
	assert.Equal(t, errcode.ServiceDegraded, coded.Code)
	assert.Equal(t, "system busy", coded.Msg)
	assert.Equal(t, uint32(1), guard.Counts().ConsecutiveFailures)
}

func TestGuard_BusinessErrorsPassThroughAndDoNotTrip(t *testing.T) {
	guard := NewGuard("update", testConfig(), quietLogger(), nil)
	notFound := errcode.NotFound()
	invalid := errcode.Validation("bad amount")

	for i := 0; i < 10; i++ {
		_, err := guard.Execute(context.Background(), func() (any, error) { return nil, notFound })
		assert.Same(t, notFound, err)

		_, err = guard.Execute(context.Background(), func() (any, error) { return nil, invalid })
		assert.Same(t, invalid, err)
	}

	assert.Equal(t, StateClosed, guard.State())
	assert.Equal(t, uint32(0), guard.Counts().TotalFailures)
}

func TestGuard_OpensAndShortCircuits(t *testing.T) {
	guard := NewGuard("list", testConfig(), quietLogger(), nil)

	for i := 0; i < 3; i++ {
		_, err := guard.Execute(context.Background(), failing)
		assert.Error(t, err)
	}
	assert.Equal(t, StateOpen, guard.State())

	var called atomic.Bool
	_, err := guard.Execute(context.Background(), func() (any, error) {
		called.Store(true)
		return nil, nil
	})

	assert.False(t, called.Load(), "open breaker must not invoke the call")
	assert.Equal(t, errcode.ServiceDegraded, errcode.CodeOf(err))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestGuard_HalfOpenProbeClosesBreaker(t *testing.T) {
	guard := NewGuard("delete", testConfig(), quietLogger(), nil)
	for i := 0; i < 3; i++ {
		_, _ = guard.Execute(context.Background(), failing)
	}
	require.Equal(t, StateOpen, guard.State())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, guard.State())

	result, err := guard.Execute(context.Background(), func() (any, error) { return true, nil })

	assert.NoError(t, err)
	assert.Equal(t, true, result)
	assert.Equal(t, StateClosed, guard.State())
}

func TestGuard_HalfOpenProbeFailureReopens(t *testing.T) {
	guard := NewGuard("delete", testConfig(), quietLogger(), nil)
	for i := 0; i < 3; i++ {
		_, _ = guard.Execute(context.Background(), failing)
	}

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, StateHalfOpen, guard.State())

	_, err := guard.Execute(context.Background(), failing)

	assert.Equal(t, errcode.ServiceDegraded, errcode.CodeOf(err))
	assert.Equal(t, StateOpen, guard.State())
}

func TestGuard_StateChangeCallback(t *testing.T) {
	var mu sync.Mutex
	var transitions []State

	guard := NewGuard("create", testConfig(), quietLogger(), func(name string, from, to State) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "create", name)
		transitions = append(transitions, to)
	})

	for i := 0; i < 3; i++ {
		_, _ = guard.Execute(context.Background(), failing)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateOpen}, transitions)
}

func TestGuard_PanicIsContained(t *testing.T) {
	guard := NewGuard("create", testConfig(), quietLogger(), nil)

	_, err := guard.Execute(context.Background(), func() (any, error) {
		panic("nil map write")
	})

	assert.Equal(t, errcode.ServiceDegraded, errcode.CodeOf(err))
	assert.ErrorIs(t, err, ErrPanic)
	assert.Equal(t, uint32(1), guard.Counts().TotalFailures)
}

func TestGuard_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RPS = 0.001
	cfg.Burst = 2
	guard := NewGuard("create", cfg, quietLogger(), nil)

	var calls atomic.Int32
	call := func() (any, error) {
		calls.Add(1)
		return nil, nil
	}

	_, err := guard.Execute(context.Background(), call)
	assert.NoError(t, err)
	_, err = guard.Execute(context.Background(), call)
	assert.NoError(t, err)

	_, err = guard.Execute(context.Background(), call)
	assert.Equal(t, errcode.ServiceDegraded, errcode.CodeOf(err))
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(2), calls.Load())

	// Admission rejections never reach the breaker.
	assert.Equal(t, StateClosed, guard.State())
	assert.Equal(t, uint32(2), guard.Counts().Requests)
}

func TestGuard_RateLimitWaitsWithinTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.RPS = 50
	cfg.Burst = 1
	cfg.AcquireTimeout = time.Second
	guard := NewGuard("create", cfg, quietLogger(), nil)

	for i := 0; i < 3; i++ {
		_, err := guard.Execute(context.Background(), func() (any, error) { return nil, nil })
		assert.NoError(t, err)
	}
}

func TestGuard_ConcurrencyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxConcurrent = 1
	guard := NewGuard("list", cfg, quietLogger(), nil)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := guard.Execute(context.Background(), func() (any, error) {
			close(entered)
			<-unblock
			return nil, nil
		})
		assert.NoError(t, err)
	}()
	<-entered

	_, err := guard.Execute(context.Background(), func() (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrConcurrencyLimit)
	assert.Equal(t, errcode.ServiceDegraded, errcode.CodeOf(err))

	close(unblock)
	<-done

	_, err = guard.Execute(context.Background(), func() (any, error) { return nil, nil })
	assert.NoError(t, err)
}

func TestRun_TypedResult(t *testing.T) {
	guard := NewGuard("list", testConfig(), quietLogger(), nil)

	items, err := Run(context.Background(), guard, func() ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)

	items, err = Run(context.Background(), guard, func() ([]int, error) {
		return []int{4}, errcode.Validation("bad page")
	})
	assert.Nil(t, items)
	assert.Equal(t, errcode.IllegalParam, errcode.CodeOf(err))
}

// -- Manager tests --

func TestManager_GetOrCreateReturnsSameGuard(t *testing.T) {
	manager := NewManager(quietLogger())

	first := manager.GetOrCreate("create", testConfig())
	second := manager.GetOrCreate("create", DefaultConfig())

	assert.Same(t, first, second)
	assert.Equal(t, []string{"create"}, manager.Names())
}

func TestManager_StatesAndHealth(t *testing.T) {
	manager := NewManager(quietLogger())
	create := manager.GetOrCreate("create", testConfig())
	manager.GetOrCreate("list", testConfig())

	assert.True(t, manager.IsHealthy())
	assert.Equal(t, map[string]State{"create": StateClosed, "list": StateClosed}, manager.States())

	for i := 0; i < 3; i++ {
		_, _ = create.Execute(context.Background(), failing)
	}

	assert.False(t, manager.IsHealthy())
	assert.Equal(t, StateOpen, manager.States()["create"])
	assert.Equal(t, []string{"create", "list"}, manager.Names())
}
