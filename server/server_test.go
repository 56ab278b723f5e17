package server

import (
	"context"
	"testing"
	"time"

	"github.com/giansalex/cw-lockbox/lockbox"
	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/store"
	"github.com/giansalex/cw-lockbox/testutil"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type serverFixture struct {
	server LockboxServer
	clock  *lockbox.ManualClock
	now    time.Time
}

func newServerFixture(t *testing.T, mutate func(*LockboxServerConfig)) *serverFixture {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := lockbox.NewManualClock(now, 100)
	engine := lockbox.NewEngine(store.NewMemoryStore(nil), lockbox.WithClock(clock))

	cfg := DefaultLockboxServerConfig()
	cfg.ListenAddress = "127.0.0.1:0"
	if mutate != nil {
		mutate(&cfg)
	}

	srv, err := NewLockboxServer(engine, cfg)
	testutil.RequireNoError(t, err)
	testutil.RequireNoError(t, srv.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})

	return &serverFixture{server: srv, clock: clock, now: now}
}

func (f *serverFixture) createLock(t *testing.T, releaseIn time.Duration) string {
	t.Helper()

	resp, err := f.server.CreateLock(context.Background(), &pb.CreateLockRequest{
		Caller:    "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    100,
		Condition: &pb.ReleaseCondition{
			ReleaseTime: timestamppb.New(f.now.Add(releaseIn)),
		},
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp)
	if resp.Error != nil {
		t.Fatalf("CreateLock failed: %v", resp.Error)
	}
	return resp.LockId
}

func TestServerCreateLock(t *testing.T) {
	f := newServerFixture(t, nil)

	resp, err := f.server.CreateLock(context.Background(), &pb.CreateLockRequest{
		Caller:    "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    250,
		Condition: &pb.ReleaseCondition{
			ReleaseTime: timestamppb.New(f.now.Add(time.Hour)),
		},
	})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertNotEqual(t, "", resp.LockId)
	testutil.RequireNotNil(t, resp.Lock)
	testutil.AssertEqual(t, pb.LockStatus_LOCKED, resp.Lock.Status)
	testutil.AssertEqual(t, "alice", resp.Lock.Owner)
	testutil.AssertEqual(t, uint64(250), resp.Lock.Amount)
}

func TestServerCreateLock_EngineRejection(t *testing.T) {
	f := newServerFixture(t, nil)

	resp, err := f.server.CreateLock(context.Background(), &pb.CreateLockRequest{
		Caller:    "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    0,
		Condition: &pb.ReleaseCondition{
			ReleaseTime: timestamppb.New(f.now.Add(time.Hour)),
		},
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_AMOUNT, resp.Error.Code)
}

func TestServerCreateLock_ValidationRejection(t *testing.T) {
	f := newServerFixture(t, nil)

	resp, err := f.server.CreateLock(context.Background(), &pb.CreateLockRequest{
		Caller:    "",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    100,
		Condition: &pb.ReleaseCondition{ReleaseHeight: 500},
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_INVALID_ARGUMENT, resp.Error.Code)
	testutil.AssertEqual(t, "caller", resp.Error.Details["field"])
}

func TestServerReleaseLifecycle(t *testing.T) {
	f := newServerFixture(t, nil)
	lockID := f.createLock(t, 10*time.Minute)

	// Too early: the condition is not yet met.
	early, err := f.server.Release(context.Background(), &pb.ReleaseRequest{
		Caller: "bob",
		LockId: lockID,
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, early.Error)
	testutil.AssertEqual(t, pb.ErrorCode_NOT_YET_RELEASABLE, early.Error.Code)

	f.clock.Advance(10 * time.Minute)

	resp, err := f.server.Release(context.Background(), &pb.ReleaseRequest{
		Caller: "bob",
		LockId: lockID,
	})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.RequireNotNil(t, resp.Lock)
	testutil.AssertEqual(t, pb.LockStatus_RELEASED, resp.Lock.Status)
	testutil.RequireNotNil(t, resp.Transfer)
	testutil.AssertEqual(t, "bob", resp.Transfer.Beneficiary)
	testutil.AssertEqual(t, uint64(100), resp.Transfer.Amount)

	// Terminal locks cannot be released again.
	again, err := f.server.Release(context.Background(), &pb.ReleaseRequest{
		Caller: "bob",
		LockId: lockID,
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, again.Error)
	testutil.AssertEqual(t, pb.ErrorCode_ALREADY_FINALIZED, again.Error.Code)
}

func TestServerCancelLifecycle(t *testing.T) {
	f := newServerFixture(t, nil)
	lockID := f.createLock(t, time.Hour)

	// Only the owner may cancel.
	denied, err := f.server.Cancel(context.Background(), &pb.CancelRequest{
		Caller: "bob",
		LockId: lockID,
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, denied.Error)
	testutil.AssertEqual(t, pb.ErrorCode_UNAUTHORIZED, denied.Error.Code)

	resp, err := f.server.Cancel(context.Background(), &pb.CancelRequest{
		Caller: "alice",
		LockId: lockID,
	})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertEqual(t, pb.LockStatus_CANCELLED, resp.Lock.Status)
	testutil.RequireNotNil(t, resp.Transfer)
	testutil.AssertEqual(t, "alice", resp.Transfer.Beneficiary, "cancel refunds the owner")
}

func TestServerCancel_WindowClosed(t *testing.T) {
	f := newServerFixture(t, nil)
	lockID := f.createLock(t, time.Minute)

	f.clock.Advance(2 * time.Minute)

	resp, err := f.server.Cancel(context.Background(), &pb.CancelRequest{
		Caller: "alice",
		LockId: lockID,
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_CANCEL_WINDOW_CLOSED, resp.Error.Code)
}

func TestServerGetLock(t *testing.T) {
	f := newServerFixture(t, nil)
	lockID := f.createLock(t, time.Hour)

	resp, err := f.server.GetLock(context.Background(), &pb.GetLockRequest{LockId: lockID})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, resp.Error)
	testutil.AssertEqual(t, lockID, resp.Lock.LockId)

	missing, err := f.server.GetLock(context.Background(), &pb.GetLockRequest{LockId: "lock-404"})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, missing.Error)
	testutil.AssertEqual(t, pb.ErrorCode_LOCK_NOT_FOUND, missing.Error.Code)
}

func TestServerListLocks(t *testing.T) {
	f := newServerFixture(t, nil)
	first := f.createLock(t, time.Minute)
	second := f.createLock(t, time.Hour)

	f.clock.Advance(time.Minute)
	_, err := f.server.Release(context.Background(), &pb.ReleaseRequest{Caller: "bob", LockId: first})
	testutil.RequireNoError(t, err)

	all, err := f.server.ListLocksByOwner(context.Background(), &pb.ListLocksByOwnerRequest{Owner: "alice"})
	testutil.RequireNoError(t, err)
	testutil.AssertNil(t, all.Error)
	testutil.AssertLen(t, all.Locks, 2)
	testutil.AssertEqual(t, first, all.Locks[0].LockId, "insertion order is preserved")

	active, err := f.server.ListLocksByOwner(context.Background(), &pb.ListLocksByOwnerRequest{
		Owner:        "alice",
		StatusFilter: pb.LockStatus_LOCKED,
	})
	testutil.RequireNoError(t, err)
	testutil.AssertLen(t, active.Locks, 1)
	testutil.AssertEqual(t, second, active.Locks[0].LockId)

	byRecipient, err := f.server.ListLocksByRecipient(context.Background(), &pb.ListLocksByRecipientRequest{
		Recipient: "bob",
	})
	testutil.RequireNoError(t, err)
	testutil.AssertLen(t, byRecipient.Locks, 2)

	nobody, err := f.server.ListLocksByRecipient(context.Background(), &pb.ListLocksByRecipientRequest{
		Recipient: "carol",
	})
	testutil.RequireNoError(t, err)
	testutil.AssertLen(t, nobody.Locks, 0)
}

func TestServerRateLimiting(t *testing.T) {
	f := newServerFixture(t, func(c *LockboxServerConfig) {
		c.EnableRateLimit = true
		c.RateLimit = 1
		c.RateLimitBurst = 1
		c.RateLimitWindow = time.Hour
	})

	first, err := f.server.GetLock(context.Background(), &pb.GetLockRequest{LockId: "lock-1"})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, first.Error)
	testutil.AssertEqual(t, pb.ErrorCode_LOCK_NOT_FOUND, first.Error.Code, "first request passes the limiter")

	second, err := f.server.GetLock(context.Background(), &pb.GetLockRequest{LockId: "lock-1"})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, second.Error)
	testutil.AssertEqual(t, pb.ErrorCode_RATE_LIMITED, second.Error.Code)
}

func TestServerRejectsRequestsBeforeStart(t *testing.T) {
	engine := lockbox.NewEngine(store.NewMemoryStore(nil))
	cfg := DefaultLockboxServerConfig()
	cfg.ListenAddress = "127.0.0.1:0"

	srv, err := NewLockboxServer(engine, cfg)
	testutil.RequireNoError(t, err)

	resp, err := srv.GetLock(context.Background(), &pb.GetLockRequest{LockId: "lock-1"})
	testutil.RequireNoError(t, err)
	testutil.RequireNotNil(t, resp.Error)
	testutil.AssertEqual(t, pb.ErrorCode_UNAVAILABLE, resp.Error.Code)
}

func TestServerStartStop(t *testing.T) {
	engine := lockbox.NewEngine(store.NewMemoryStore(nil))
	cfg := DefaultLockboxServerConfig()
	cfg.ListenAddress = "127.0.0.1:0"

	srv, err := NewLockboxServer(engine, cfg)
	testutil.RequireNoError(t, err)

	ctx := context.Background()
	testutil.AssertErrorIs(t, srv.Stop(ctx), ErrServerNotStarted)

	testutil.RequireNoError(t, srv.Start(ctx))
	testutil.AssertErrorIs(t, srv.Start(ctx), ErrServerAlreadyStarted)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	testutil.AssertNoError(t, srv.Stop(stopCtx))
}

func TestNewLockboxServerValidation(t *testing.T) {
	cfg := DefaultLockboxServerConfig()

	_, err := NewLockboxServer(nil, cfg)
	testutil.AssertError(t, err, "nil engine must be rejected")

	cfg.ListenAddress = ""
	_, err = NewLockboxServer(lockbox.NewEngine(store.NewMemoryStore(nil)), cfg)
	testutil.AssertError(t, err)
}

func TestServerMetricsAccessor(t *testing.T) {
	f := newServerFixture(t, nil)
	testutil.AssertNotNil(t, f.server.Metrics())
}
