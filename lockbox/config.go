package lockbox

import (
	"time"

	"github.com/giansalex/cw-lockbox/logger"
	"github.com/giansalex/cw-lockbox/types"
)

// Option defines a function that applies a configuration setting to an
// Engine during initialization.
type Option func(*Config)

// Config holds configuration parameters for an Engine instance.
type Config struct {
	// ReleasePolicy selects who may trigger a condition-met release.
	// The default preserves the original contract's owner-triggered unlock
	// while also admitting the entitled recipient.
	ReleasePolicy types.ReleasePolicy

	// MaxLockDuration bounds how far in the future a time release condition
	// may lie. Zero disables the bound.
	MaxLockDuration time.Duration

	// MaxLockHeightDelta bounds how many blocks ahead a height release
	// condition may lie. Zero disables the bound.
	MaxLockHeightDelta types.BlockHeight

	Clock   Clock
	Logger  logger.Logger
	Metrics Metrics
}

// DefaultConfig returns a Config with sensible defaults based on the
// predefined constants.
func DefaultConfig() Config {
	return Config{
		ReleasePolicy:      types.ReleaseOwnerOrRecipient,
		MaxLockDuration:    DefaultMaxLockDuration,
		MaxLockHeightDelta: DefaultMaxLockHeightDelta,
	}
}

// WithReleasePolicy sets the authorization variant for Release.
func WithReleasePolicy(policy types.ReleasePolicy) Option {
	return func(cfg *Config) {
		if policy.IsValid() {
			cfg.ReleasePolicy = policy
		}
	}
}

// WithMaxLockDuration sets the upper bound for time release conditions.
// The duration must be at least MinLockDuration.
func WithMaxLockDuration(d time.Duration) Option {
	return func(cfg *Config) {
		if d >= MinLockDuration {
			cfg.MaxLockDuration = d
		}
	}
}

// WithMaxLockHeightDelta sets the upper bound for height release conditions.
func WithMaxLockHeightDelta(delta types.BlockHeight) Option {
	return func(cfg *Config) {
		if delta > 0 {
			cfg.MaxLockHeightDelta = delta
		}
	}
}

// WithClock sets the host clock used for time and height reads.
func WithClock(clock Clock) Option {
	return func(cfg *Config) {
		if clock != nil {
			cfg.Clock = clock
		}
	}
}

// WithLogger sets the logger for internal events.
func WithLogger(logger logger.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// WithMetrics sets the metrics collector for operational data.
func WithMetrics(metrics Metrics) Option {
	return func(cfg *Config) {
		if metrics != nil {
			cfg.Metrics = metrics
		}
	}
}
