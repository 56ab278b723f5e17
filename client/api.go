package client

import (
	"context"

	"github.com/giansalex/cw-lockbox/types"
)

// LockboxClient defines a high-level client for interacting with a lockbox
// server. It abstracts gRPC communication and converts wire-level error codes
// back into typed Go errors.
//
// All operations are context-aware and honor cancellation and timeouts.
type LockboxClient interface {
	// CreateLock custodies a new deposit under a release condition.
	// The caller becomes the lock's owner.
	//
	// Returns:
	//   - CreateLockResult with the assigned id and the stored record
	//   - Error if the operation fails
	//
	// Possible errors:
	//   - ErrInvalidAmount: the amount is zero
	//   - ErrInvalidReleaseCondition: the condition is not in the future
	//   - ErrConditionTooFar: the condition exceeds the configured bound
	//   - ErrInvalidArgument: a request field is structurally invalid
	CreateLock(ctx context.Context, req *CreateLockRequest) (*CreateLockResult, error)

	// Release finalizes a matured lock and returns the transfer instruction
	// paying the recipient.
	//
	// Returns:
	//   - ReleaseResult with the terminal record and the transfer
	//   - Error if the operation fails
	//
	// Possible errors:
	//   - ErrLockNotFound: no lock with the given id exists
	//   - ErrUnauthorized: the caller may not release this lock
	//   - ErrNotYetReleasable: the release condition is not yet met
	//   - ErrAlreadyFinalized: the lock was already released or cancelled
	Release(ctx context.Context, req *ReleaseRequest) (*ReleaseResult, error)

	// Cancel finalizes a lock before its condition is met and returns the
	// transfer instruction refunding the owner.
	//
	// Returns:
	//   - CancelResult with the terminal record and the transfer
	//   - Error if the operation fails
	//
	// Possible errors:
	//   - ErrLockNotFound: no lock with the given id exists
	//   - ErrUnauthorized: only the owner may cancel
	//   - ErrCancelWindowClosed: the release condition is already met
	//   - ErrAlreadyFinalized: the lock was already released or cancelled
	Cancel(ctx context.Context, req *CancelRequest) (*CancelResult, error)

	// GetLock returns the record for the given id, terminal or not.
	//
	// Returns ErrLockNotFound if no such record exists.
	GetLock(ctx context.Context, id types.LockID) (*types.LockRecord, error)

	// ListLocksByOwner returns every lock created by the given owner,
	// optionally narrowed to a single status.
	ListLocksByOwner(ctx context.Context, req *ListLocksByOwnerRequest) (*ListLocksResult, error)

	// ListLocksByRecipient returns every lock payable to the given recipient,
	// optionally narrowed to a single status.
	ListLocksByRecipient(ctx context.Context, req *ListLocksByRecipientRequest) (*ListLocksResult, error)

	// Metrics returns client-side metrics for observability.
	//
	// Returns nil if metrics collection is disabled.
	Metrics() ClientMetrics

	// Close shuts down the client, releasing all resources and closing connections.
	// The client must not be used after Close is called.
	Close() error
}
