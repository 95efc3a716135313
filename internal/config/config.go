package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-server/internal/resilience"
)

type Config struct {
	HTTPPort   string
	LogLevel   logrus.Level
	Resilience resilience.Config
}

func ProcessEnvironmentVariables() (*Config, error) {
	env := Config{
		HTTPPort:   "8080",
		LogLevel:   logrus.InfoLevel,
		Resilience: resilience.DefaultConfig(),
	}

	if v := os.Getenv("HTTP_PORT"); len(v) != 0 {
		env.HTTPPort = v
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	r := &env.Resilience
	parsers := []struct {
		name  string
		parse func(string) error
	}{
		{"RATE_LIMIT_RPS", floatInto(&r.RPS)},
		{"RATE_LIMIT_BURST", intInto(&r.Burst)},
		{"MAX_CONCURRENT", intInto(&r.MaxConcurrent)},
		{"ACQUIRE_TIMEOUT", durationInto(&r.AcquireTimeout)},
		{"BREAKER_HALF_OPEN_REQUESTS", uint32Into(&r.HalfOpenRequests)},
		{"BREAKER_INTERVAL", durationInto(&r.Interval)},
		{"BREAKER_OPEN_TIMEOUT", durationInto(&r.OpenTimeout)},
		{"BREAKER_CONSECUTIVE_FAILURES", uint32Into(&r.ConsecutiveFailures)},
		{"BREAKER_FAILURE_RATIO", floatInto(&r.FailureRatio)},
		{"BREAKER_MIN_REQUESTS", uint32Into(&r.MinRequests)},
	}
	for _, p := range parsers {
		v := os.Getenv(p.name)
		if len(v) == 0 {
			continue
		}
		if err := p.parse(v); err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
	}

	if r.FailureRatio <= 0 || r.FailureRatio > 1 {
		return nil, fmt.Errorf("BREAKER_FAILURE_RATIO: must be in (0, 1], got %v", r.FailureRatio)
	}

	return &env, nil
}

func floatInto(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func intInto(dst *int) func(string) error {
	return func(v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = i
		return nil
	}
}

func uint32Into(dst *uint32) func(string) error {
	return func(v string) error {
		u, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return err
		}
		*dst = uint32(u)
		return nil
	}
}

func durationInto(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}
