package server

import (
	"fmt"
	"time"

	"github.com/giansalex/cw-lockbox/logger"
)

// LockboxServerConfig holds the configuration settings for a lockbox server instance.
type LockboxServerConfig struct {
	// ListenAddress is the gRPC server's bind address (e.g., "0.0.0.0:8080").
	ListenAddress string

	RequestTimeout  time.Duration // Max time to handle a client request
	ShutdownTimeout time.Duration // Max time allowed for graceful shutdown

	EnableRateLimit bool          // Whether rate limiting is enforced
	RateLimit       int           // Requests per second allowed per client
	RateLimitBurst  int           // Burst capacity for client requests
	RateLimitWindow time.Duration // Time window used for rate calculation

	Logger  logger.Logger
	Metrics ServerMetrics
}

// DefaultLockboxServerConfig returns a config pre-populated with safe defaults.
func DefaultLockboxServerConfig() LockboxServerConfig {
	return LockboxServerConfig{
		ListenAddress:   DefaultListenAddress,
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		EnableRateLimit: false,
		RateLimit:       DefaultRateLimit,
		RateLimitBurst:  DefaultRateLimitBurst,
		RateLimitWindow: DefaultRateLimitWindow,
		Logger:          logger.NewNoOpLogger(),
		Metrics:         NewNoOpServerMetrics(),
	}
}

// Validate checks if the server configuration is valid.
func (c *LockboxServerConfig) Validate() error {
	if c.ListenAddress == "" {
		return NewLockboxServerConfigError("ListenAddress cannot be empty")
	}

	checkPositiveDuration := func(val time.Duration, name string) error {
		if val <= 0 {
			return NewLockboxServerConfigError(fmt.Sprintf("%s must be positive", name))
		}
		return nil
	}

	checkPositiveInt := func(val int, name string) error {
		if val <= 0 {
			return NewLockboxServerConfigError(fmt.Sprintf("%s must be positive", name))
		}
		return nil
	}

	if err := checkPositiveDuration(c.RequestTimeout, "RequestTimeout"); err != nil {
		return err
	}
	if err := checkPositiveDuration(c.ShutdownTimeout, "ShutdownTimeout"); err != nil {
		return err
	}

	if c.EnableRateLimit {
		if err := checkPositiveInt(c.RateLimit, "RateLimit"); err != nil {
			return err
		}
		if err := checkPositiveInt(c.RateLimitBurst, "RateLimitBurst"); err != nil {
			return err
		}
		if err := checkPositiveDuration(c.RateLimitWindow, "RateLimitWindow"); err != nil {
			return err
		}
	}

	return nil
}

// LockboxServerConfigError represents a validation error in LockboxServerConfig.
type LockboxServerConfigError struct {
	Message string
}

// NewLockboxServerConfigError returns a new config error instance.
func NewLockboxServerConfigError(msg string) *LockboxServerConfigError {
	return &LockboxServerConfigError{Message: msg}
}

// Error implements the error interface.
func (e *LockboxServerConfigError) Error() string {
	return "server config error: " + e.Message
}
