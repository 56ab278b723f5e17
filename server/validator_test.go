package server

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/giansalex/cw-lockbox/logger"
	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/testutil"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func newTestValidator() RequestValidator {
	return NewRequestValidator(logger.NewNoOpLogger())
}

func validCreateRequest() *pb.CreateLockRequest {
	return &pb.CreateLockRequest{
		Caller:    "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    100,
		Condition: &pb.ReleaseCondition{
			ReleaseTime: timestamppb.New(time.Now().Add(time.Hour)),
		},
	}
}

func TestValidateCreateLockRequest(t *testing.T) {
	v := newTestValidator()

	testutil.AssertNoError(t, v.ValidateCreateLockRequest(validCreateRequest()))

	heightReq := validCreateRequest()
	heightReq.Condition = &pb.ReleaseCondition{ReleaseHeight: 500}
	testutil.AssertNoError(t, v.ValidateCreateLockRequest(heightReq))

	tests := []struct {
		name   string
		mutate func(*pb.CreateLockRequest)
		field  string
	}{
		{"empty caller", func(r *pb.CreateLockRequest) { r.Caller = "" }, "caller"},
		{"caller too long", func(r *pb.CreateLockRequest) { r.Caller = strings.Repeat("a", MaxPartyIDLength+1) }, "caller"},
		{"caller control chars", func(r *pb.CreateLockRequest) { r.Caller = "al\nice" }, "caller"},
		{"empty recipient", func(r *pb.CreateLockRequest) { r.Recipient = "" }, "recipient"},
		{"empty token", func(r *pb.CreateLockRequest) { r.Token = "" }, "token"},
		{"token too long", func(r *pb.CreateLockRequest) { r.Token = strings.Repeat("u", MaxTokenIDLength+1) }, "token"},
		{"nil condition", func(r *pb.CreateLockRequest) { r.Condition = nil }, "condition"},
		{"both axes set", func(r *pb.CreateLockRequest) {
			r.Condition = &pb.ReleaseCondition{
				ReleaseTime:   timestamppb.Now(),
				ReleaseHeight: 10,
			}
		}, "condition"},
		{"no axis set", func(r *pb.CreateLockRequest) { r.Condition = &pb.ReleaseCondition{} }, "condition"},
		{"invalid timestamp", func(r *pb.CreateLockRequest) {
			r.Condition = &pb.ReleaseCondition{
				ReleaseTime: &timestamppb.Timestamp{Seconds: 1, Nanos: -1},
			}
		}, "condition.release_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			err := v.ValidateCreateLockRequest(req)
			testutil.AssertError(t, err)

			var validationErr *ValidationError
			testutil.AssertTrue(t, errors.As(err, &validationErr), "expected a ValidationError, got %T", err)
			testutil.AssertEqual(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateReleaseRequest(t *testing.T) {
	v := newTestValidator()

	testutil.AssertNoError(t, v.ValidateReleaseRequest(&pb.ReleaseRequest{Caller: "bob", LockId: "lock-1"}))
	testutil.AssertError(t, v.ValidateReleaseRequest(&pb.ReleaseRequest{Caller: "", LockId: "lock-1"}))
	testutil.AssertError(t, v.ValidateReleaseRequest(&pb.ReleaseRequest{Caller: "bob", LockId: ""}))
	testutil.AssertError(t, v.ValidateReleaseRequest(&pb.ReleaseRequest{
		Caller: "bob",
		LockId: strings.Repeat("x", MaxLockIDLength+1),
	}))
}

func TestValidateCancelRequest(t *testing.T) {
	v := newTestValidator()

	testutil.AssertNoError(t, v.ValidateCancelRequest(&pb.CancelRequest{Caller: "alice", LockId: "lock-1"}))
	testutil.AssertError(t, v.ValidateCancelRequest(&pb.CancelRequest{Caller: "alice", LockId: "lock\x001"}))
	testutil.AssertError(t, v.ValidateCancelRequest(&pb.CancelRequest{LockId: "lock-1"}))
}

func TestValidateGetLockRequest(t *testing.T) {
	v := newTestValidator()

	testutil.AssertNoError(t, v.ValidateGetLockRequest(&pb.GetLockRequest{LockId: "lock-1"}))
	testutil.AssertError(t, v.ValidateGetLockRequest(&pb.GetLockRequest{LockId: ""}))
}

func TestValidateListRequests(t *testing.T) {
	v := newTestValidator()

	testutil.AssertNoError(t, v.ValidateListLocksByOwnerRequest(&pb.ListLocksByOwnerRequest{Owner: "alice"}))
	testutil.AssertNoError(t, v.ValidateListLocksByOwnerRequest(&pb.ListLocksByOwnerRequest{
		Owner:        "alice",
		StatusFilter: pb.LockStatus_RELEASED,
	}))
	testutil.AssertError(t, v.ValidateListLocksByOwnerRequest(&pb.ListLocksByOwnerRequest{Owner: ""}))
	testutil.AssertError(t, v.ValidateListLocksByOwnerRequest(&pb.ListLocksByOwnerRequest{
		Owner:        "alice",
		StatusFilter: pb.LockStatus(42),
	}))

	testutil.AssertNoError(t, v.ValidateListLocksByRecipientRequest(&pb.ListLocksByRecipientRequest{Recipient: "bob"}))
	testutil.AssertError(t, v.ValidateListLocksByRecipientRequest(&pb.ListLocksByRecipientRequest{Recipient: ""}))
}
