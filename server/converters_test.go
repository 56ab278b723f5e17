package server

import (
	"testing"
	"time"

	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestProtoLock(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	released := created.Add(time.Hour)

	record := &types.LockRecord{
		ID:        "lock-3",
		Owner:     "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    750,
		Condition: types.ReleaseCondition{
			Kind:      types.ConditionTime,
			ReleaseAt: created.Add(30 * time.Minute),
		},
		Status:      types.StatusReleased,
		CreatedAt:   created,
		FinalizedAt: released,
	}

	lock := protoLock(record)
	testutil.RequireNotNil(t, lock)
	testutil.AssertEqual(t, "lock-3", lock.LockId)
	testutil.AssertEqual(t, "alice", lock.Owner)
	testutil.AssertEqual(t, "bob", lock.Recipient)
	testutil.AssertEqual(t, "uatom", lock.Token)
	testutil.AssertEqual(t, uint64(750), lock.Amount)
	testutil.AssertEqual(t, pb.LockStatus_RELEASED, lock.Status)
	testutil.AssertEqual(t, created, lock.CreatedAt.AsTime())
	testutil.RequireNotNil(t, lock.FinalizedAt)
	testutil.AssertEqual(t, released, lock.FinalizedAt.AsTime())
	testutil.RequireNotNil(t, lock.Condition)
	testutil.RequireNotNil(t, lock.Condition.ReleaseTime)

	testutil.AssertNil(t, protoLock(nil))
}

func TestProtoLock_ActiveLockHasNoFinalizedAt(t *testing.T) {
	record := &types.LockRecord{
		ID:     "lock-1",
		Status: types.StatusLocked,
		Condition: types.ReleaseCondition{
			Kind:          types.ConditionHeight,
			ReleaseHeight: 900,
		},
		CreatedAt: time.Now(),
	}

	lock := protoLock(record)
	testutil.RequireNotNil(t, lock)
	testutil.AssertNil(t, lock.FinalizedAt)
	testutil.AssertEqual(t, pb.LockStatus_LOCKED, lock.Status)
	testutil.AssertEqual(t, uint64(900), lock.Condition.ReleaseHeight)
	testutil.AssertNil(t, lock.Condition.ReleaseTime)
}

func TestProtoTransfer(t *testing.T) {
	instruction := &types.TransferInstruction{
		Token:       "uatom",
		Amount:      500,
		Beneficiary: "bob",
		LockID:      "lock-9",
	}

	transfer := protoTransfer(instruction)
	testutil.RequireNotNil(t, transfer)
	testutil.AssertEqual(t, "uatom", transfer.Token)
	testutil.AssertEqual(t, uint64(500), transfer.Amount)
	testutil.AssertEqual(t, "bob", transfer.Beneficiary)
	testutil.AssertEqual(t, "lock-9", transfer.LockId)

	testutil.AssertNil(t, protoTransfer(nil))
}

func TestDomainCondition(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	timeCond := domainCondition(&pb.ReleaseCondition{ReleaseTime: timestamppb.New(at)})
	testutil.AssertEqual(t, types.ConditionTime, timeCond.Kind)
	testutil.AssertEqual(t, at, timeCond.ReleaseAt)

	heightCond := domainCondition(&pb.ReleaseCondition{ReleaseHeight: 1234})
	testutil.AssertEqual(t, types.ConditionHeight, heightCond.Kind)
	testutil.AssertEqual(t, types.BlockHeight(1234), heightCond.ReleaseHeight)
}

func TestDomainStatus(t *testing.T) {
	status, ok := domainStatus(pb.LockStatus_LOCKED)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, types.StatusLocked, status)

	status, ok = domainStatus(pb.LockStatus_RELEASED)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, types.StatusReleased, status)

	status, ok = domainStatus(pb.LockStatus_CANCELLED)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, types.StatusCancelled, status)

	_, ok = domainStatus(pb.LockStatus_LOCK_STATUS_UNSPECIFIED)
	testutil.AssertFalse(t, ok, "unspecified status must mean no filter")
}

func TestStatusRoundTrip(t *testing.T) {
	for _, status := range []types.LockStatus{
		types.StatusLocked, types.StatusReleased, types.StatusCancelled,
	} {
		back, ok := domainStatus(protoStatus(status))
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, status, back)
	}
}
