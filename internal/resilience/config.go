package resilience

import "time"

// Config holds the admission and breaker settings for one guarded operation.
type Config struct {
	RPS            float64       // Token refill rate, <= 0 disables rate limiting
	Burst          int           // Token bucket size
	MaxConcurrent  int           // Concurrent calls allowed, <= 0 disables the slot pool
	AcquireTimeout time.Duration // How long a call may wait for a token or a slot

	HalfOpenRequests    uint32        // Probe calls allowed while half-open
	Interval            time.Duration // Closed-state window after which counts reset, 0 keeps them
	OpenTimeout         time.Duration // Time spent open before probing
	ConsecutiveFailures uint32        // Consecutive failures that open the breaker
	FailureRatio        float64       // Failure ratio that opens the breaker
	MinRequests         uint32        // Requests seen before the ratio is considered
}

// DefaultConfig mirrors the defaults the service ships with.
func DefaultConfig() Config {
	return Config{
		RPS:                 500,
		Burst:               100,
		MaxConcurrent:       0,
		AcquireTimeout:      0,
		HalfOpenRequests:    3,
		Interval:            time.Minute,
		OpenTimeout:         10 * time.Second,
		ConsecutiveFailures: 5,
		FailureRatio:        0.5,
		MinRequests:         10,
	}
}
