package logger

import "github.com/giansalex/cw-lockbox/types"

// Logger defines a leveled, structured logging interface used across the
// lockbox. Implementations must be safe for concurrent use.
type Logger interface {
	// Debugw logs a debug message with optional key-value pairs.
	Debugw(msg string, keysAndValues ...any)

	// Infow logs an informational message with optional key-value pairs.
	Infow(msg string, keysAndValues ...any)

	// Warnw logs a warning message with optional key-value pairs.
	Warnw(msg string, keysAndValues ...any)

	// Errorw logs an error message with optional key-value pairs.
	Errorw(msg string, keysAndValues ...any)

	// Fatalw logs a fatal message with optional key-value pairs and terminates the process.
	Fatalw(msg string, keysAndValues ...any)

	// With returns a logger with additional persistent key-value context.
	With(keysAndValues ...any) Logger

	// WithComponent returns a logger with a component name added to the context.
	WithComponent(name string) Logger

	// WithLockID returns a logger with a lock ID added to the context.
	WithLockID(id types.LockID) Logger
}
