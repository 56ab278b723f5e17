package client

import (
	"errors"
	"fmt"

	pb "github.com/giansalex/cw-lockbox/proto"
)

// Common client errors
var (
	// ErrInvalidAmount is returned when the deposit amount is zero
	ErrInvalidAmount = errors.New("amount must be strictly positive")

	// ErrInvalidReleaseCondition is returned when the release condition is not in the future
	ErrInvalidReleaseCondition = errors.New("release condition must lie in the future")

	// ErrConditionTooFar is returned when the release condition exceeds the server's bound
	ErrConditionTooFar = errors.New("release condition exceeds the maximum lock duration")

	// ErrLockNotFound is returned when the specified lock does not exist
	ErrLockNotFound = errors.New("lock not found")

	// ErrUnauthorized is returned when the caller may not perform the requested action
	ErrUnauthorized = errors.New("caller is not authorized for this action")

	// ErrNotYetReleasable is returned when releasing before the condition is met
	ErrNotYetReleasable = errors.New("release condition not yet met")

	// ErrAlreadyFinalized is returned when the lock was already released or cancelled
	ErrAlreadyFinalized = errors.New("lock already finalized")

	// ErrCancelWindowClosed is returned when cancelling after release became possible
	ErrCancelWindowClosed = errors.New("cancel window closed once release is possible")

	// ErrInvalidArgument is returned when request parameters are invalid
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable is returned when the service is unavailable
	ErrUnavailable = errors.New("service unavailable")

	// ErrRateLimit is returned when the request is rate limited
	ErrRateLimit = errors.New("request rate limited")

	// ErrInternal is returned for unclassified server-side failures
	ErrInternal = errors.New("internal server error")

	// ErrClientClosed is returned when attempting to use a closed client
	ErrClientClosed = errors.New("client is closed")
)

// ErrorFromCode converts a protobuf error code to a Go error.
func ErrorFromCode(code pb.ErrorCode) error {
	switch code {
	case pb.ErrorCode_INVALID_AMOUNT:
		return ErrInvalidAmount
	case pb.ErrorCode_INVALID_RELEASE_CONDITION:
		return ErrInvalidReleaseCondition
	case pb.ErrorCode_CONDITION_TOO_FAR:
		return ErrConditionTooFar
	case pb.ErrorCode_LOCK_NOT_FOUND:
		return ErrLockNotFound
	case pb.ErrorCode_UNAUTHORIZED:
		return ErrUnauthorized
	case pb.ErrorCode_NOT_YET_RELEASABLE:
		return ErrNotYetReleasable
	case pb.ErrorCode_ALREADY_FINALIZED:
		return ErrAlreadyFinalized
	case pb.ErrorCode_CANCEL_WINDOW_CLOSED:
		return ErrCancelWindowClosed
	case pb.ErrorCode_INVALID_ARGUMENT:
		return ErrInvalidArgument
	case pb.ErrorCode_RATE_LIMITED:
		return ErrRateLimit
	case pb.ErrorCode_UNAVAILABLE:
		return ErrUnavailable
	case pb.ErrorCode_INTERNAL_ERROR:
		return ErrInternal
	default:
		return fmt.Errorf("unknown error code: %v", code)
	}
}

// ClientError wraps an error with additional client context.
type ClientError struct {
	Op      string            // Operation that failed
	Err     error             // Underlying error
	Code    pb.ErrorCode      // Error code from server
	Details map[string]string // Additional error details
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf(
			"client %s failed: %v (code: %v, details: %v)",
			e.Op,
			e.Err,
			e.Code,
			e.Details,
		)
	}
	return fmt.Sprintf("client %s failed: %v (code: %v)", e.Op, e.Err, e.Code)
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error.
func (e *ClientError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewClientError creates a new ClientError.
func NewClientError(
	op string,
	err error,
	code pb.ErrorCode,
	details map[string]string,
) *ClientError {
	return &ClientError{
		Op:      op,
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// errorFromDetail converts a wire-level ErrorDetail into a ClientError.
func errorFromDetail(op string, detail *pb.ErrorDetail) error {
	if detail == nil {
		return nil
	}
	return NewClientError(op, ErrorFromCode(detail.Code), detail.Code, detail.Details)
}
