package client

import (
	"errors"
	"testing"

	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/testutil"
)

func TestErrorFromCode(t *testing.T) {
	tests := []struct {
		code pb.ErrorCode
		want error
	}{
		{pb.ErrorCode_INVALID_AMOUNT, ErrInvalidAmount},
		{pb.ErrorCode_INVALID_RELEASE_CONDITION, ErrInvalidReleaseCondition},
		{pb.ErrorCode_CONDITION_TOO_FAR, ErrConditionTooFar},
		{pb.ErrorCode_LOCK_NOT_FOUND, ErrLockNotFound},
		{pb.ErrorCode_UNAUTHORIZED, ErrUnauthorized},
		{pb.ErrorCode_NOT_YET_RELEASABLE, ErrNotYetReleasable},
		{pb.ErrorCode_ALREADY_FINALIZED, ErrAlreadyFinalized},
		{pb.ErrorCode_CANCEL_WINDOW_CLOSED, ErrCancelWindowClosed},
		{pb.ErrorCode_INVALID_ARGUMENT, ErrInvalidArgument},
		{pb.ErrorCode_RATE_LIMITED, ErrRateLimit},
		{pb.ErrorCode_UNAVAILABLE, ErrUnavailable},
		{pb.ErrorCode_INTERNAL_ERROR, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			testutil.AssertErrorIs(t, ErrorFromCode(tt.code), tt.want)
		})
	}
}

func TestErrorFromCodeUnknown(t *testing.T) {
	err := ErrorFromCode(pb.ErrorCode(999))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "unknown error code")
}

func TestClientError(t *testing.T) {
	err := NewClientError("release", ErrUnauthorized, pb.ErrorCode_UNAUTHORIZED, nil)

	testutil.AssertErrorIs(t, err, ErrUnauthorized)
	testutil.AssertEqual(t, ErrUnauthorized, err.Unwrap())
	testutil.AssertContains(t, err.Error(), "release")
	testutil.AssertContains(t, err.Error(), "UNAUTHORIZED")
}

func TestClientErrorWithDetails(t *testing.T) {
	details := map[string]string{"lock_id": "lock-1"}
	err := NewClientError("get_lock", ErrLockNotFound, pb.ErrorCode_LOCK_NOT_FOUND, details)

	testutil.AssertErrorIs(t, err, ErrLockNotFound)
	testutil.AssertContains(t, err.Error(), "lock_id")
}

func TestErrorFromDetail(t *testing.T) {
	testutil.AssertNoError(t, errorFromDetail("release", nil))

	err := errorFromDetail("release", &pb.ErrorDetail{
		Code:    pb.ErrorCode_NOT_YET_RELEASABLE,
		Message: "release condition not yet met",
	})
	testutil.AssertErrorIs(t, err, ErrNotYetReleasable)

	var clientErr *ClientError
	testutil.AssertTrue(t, errors.As(err, &clientErr))
	testutil.AssertEqual(t, pb.ErrorCode_NOT_YET_RELEASABLE, clientErr.Code)
	testutil.AssertEqual(t, "release", clientErr.Op)
}
