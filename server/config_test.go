package server

import (
	"errors"
	"testing"
	"time"

	"github.com/giansalex/cw-lockbox/testutil"
)

func TestDefaultLockboxServerConfig(t *testing.T) {
	cfg := DefaultLockboxServerConfig()

	testutil.AssertEqual(t, DefaultListenAddress, cfg.ListenAddress)
	testutil.AssertEqual(t, DefaultRequestTimeout, cfg.RequestTimeout)
	testutil.AssertEqual(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	testutil.AssertFalse(t, cfg.EnableRateLimit)
	testutil.AssertNotNil(t, cfg.Logger)
	testutil.AssertNotNil(t, cfg.Metrics)

	testutil.AssertNoError(t, cfg.Validate())
}

func TestLockboxServerConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LockboxServerConfig)
	}{
		{"empty listen address", func(c *LockboxServerConfig) { c.ListenAddress = "" }},
		{"zero request timeout", func(c *LockboxServerConfig) { c.RequestTimeout = 0 }},
		{"negative shutdown timeout", func(c *LockboxServerConfig) { c.ShutdownTimeout = -time.Second }},
		{"rate limit enabled with zero limit", func(c *LockboxServerConfig) {
			c.EnableRateLimit = true
			c.RateLimit = 0
		}},
		{"rate limit enabled with zero burst", func(c *LockboxServerConfig) {
			c.EnableRateLimit = true
			c.RateLimitBurst = 0
		}},
		{"rate limit enabled with zero window", func(c *LockboxServerConfig) {
			c.EnableRateLimit = true
			c.RateLimitWindow = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLockboxServerConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			testutil.AssertError(t, err)

			var configErr *LockboxServerConfigError
			testutil.AssertTrue(t, errors.As(err, &configErr), "expected a config error, got %T", err)
		})
	}
}

func TestLockboxServerConfigValidRateLimit(t *testing.T) {
	cfg := DefaultLockboxServerConfig()
	cfg.EnableRateLimit = true

	testutil.AssertNoError(t, cfg.Validate())
}
