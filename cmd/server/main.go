package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/giansalex/cw-lockbox/lockbox"
	"github.com/giansalex/cw-lockbox/logger"
	"github.com/giansalex/cw-lockbox/server"
	"github.com/giansalex/cw-lockbox/store"
	"github.com/giansalex/cw-lockbox/types"
)

// Command-line flags
var (
	listenAddr      = flag.String("listen", server.DefaultListenAddress, "Address for the gRPC endpoint")
	dataDir         = flag.String("data-dir", "", "Directory for the file-backed lock store (in-memory when empty)")
	logLevel        = flag.String("log-level", "info", "Minimum log level: debug, info, warn, error")
	startHeight     = flag.Uint64("start-height", 0, "Initial block height reported to the engine")
	releasePolicy   = flag.String("release-policy", "owner-or-recipient", "Who may trigger release: recipient, owner-or-recipient, anyone")
	maxLockDuration = flag.Duration("max-lock-duration", 0, "Upper bound on time-gated conditions (0 disables the bound)")
	maxHeightDelta  = flag.Uint64("max-height-delta", 0, "Upper bound on height-gated conditions in blocks (0 disables the bound)")
	enableRateLimit = flag.Bool("rate-limit", false, "Enable request rate limiting")
	rateLimit       = flag.Int("rate-limit-count", server.DefaultRateLimit, "Requests allowed per rate limit window")
	rateLimitBurst  = flag.Int("rate-limit-burst", server.DefaultRateLimitBurst, "Burst size for rate limiting")
)

func main() {
	flag.Parse()

	log := logger.NewStdLogger(*logLevel)

	policy, err := parseReleasePolicy(*releasePolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid release policy: %v\n", err)
		os.Exit(1)
	}

	records, err := buildStore(*dataDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open lock store: %v\n", err)
		os.Exit(1)
	}

	opts := []lockbox.Option{
		lockbox.WithClock(lockbox.NewHostClock(types.BlockHeight(*startHeight))),
		lockbox.WithReleasePolicy(policy),
		lockbox.WithLogger(log),
	}
	if *maxLockDuration > 0 {
		opts = append(opts, lockbox.WithMaxLockDuration(*maxLockDuration))
	}
	if *maxHeightDelta > 0 {
		opts = append(opts, lockbox.WithMaxLockHeightDelta(types.BlockHeight(*maxHeightDelta)))
	}
	engine := lockbox.NewEngine(records, opts...)

	cfg := server.DefaultLockboxServerConfig()
	cfg.ListenAddress = *listenAddr
	cfg.EnableRateLimit = *enableRateLimit
	cfg.RateLimit = *rateLimit
	cfg.RateLimitBurst = *rateLimitBurst
	cfg.Logger = log

	srv, err := server.NewLockboxServer(engine, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create server: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
	log.Infow("Lockbox server running", "address", *listenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Infow("Shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, server.DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Errorw("Shutdown did not complete cleanly", "error", err)
		os.Exit(1)
	}
}

// parseReleasePolicy maps the flag value onto a release policy.
func parseReleasePolicy(s string) (types.ReleasePolicy, error) {
	switch s {
	case "recipient":
		return types.ReleaseRecipientOnly, nil
	case "owner-or-recipient":
		return types.ReleaseOwnerOrRecipient, nil
	case "anyone":
		return types.ReleaseAnyone, nil
	default:
		return 0, fmt.Errorf("unknown release policy %q (want recipient, owner-or-recipient or anyone)", s)
	}
}

// buildStore opens the file-backed store when a data directory is configured,
// falling back to the in-memory store otherwise.
func buildStore(dir string, log logger.Logger) (store.LockRecordStore, error) {
	if dir == "" {
		return store.NewMemoryStore(log), nil
	}
	return store.NewFileStore(dir, log)
}
