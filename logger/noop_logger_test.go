package logger

import "testing"

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	// Test that all logging methods can be called without panicking
	logger.Debugw("debug message", "key", "value")
	logger.Infow("info message", "key", "value")
	logger.Warnw("warn message", "key", "value")
	logger.Errorw("error message", "key", "value")

	// NoOpLogger.Fatalw should not terminate the process
	logger.Fatalw("fatal message", "key", "value")

	// Test context enrichment methods
	enriched := logger.With("key", "value")
	enriched.Infow("enriched message")

	lockLogger := logger.WithLockID("lock-1")
	lockLogger.Infow("lock message")

	compLogger := logger.WithComponent("test")
	compLogger.Infow("component message")

	// Test chaining of context enrichment methods
	chainedLogger := logger.WithLockID("lock-1").WithComponent("test").With("key", "value")
	chainedLogger.Infow("chained message")
}

func TestNoOpLoggerOverrides(t *testing.T) {
	var captured string
	noop := &NoOpLogger{
		InfowFunc: func(msg string, kvs ...any) { captured = msg },
	}

	noop.Infow("hello")
	if captured != "hello" {
		t.Errorf("expected InfowFunc to capture message, got %q", captured)
	}

	var errCaptured string
	noop.ErrorwFunc = func(msg string, kvs ...any) { errCaptured = msg }
	noop.Errorw("boom")
	if errCaptured != "boom" {
		t.Errorf("expected ErrorwFunc to capture message, got %q", errCaptured)
	}
}
