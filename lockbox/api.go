package lockbox

import (
	"context"

	"github.com/giansalex/cw-lockbox/types"
)

// Engine orchestrates the lock lifecycle state machine: it validates a
// requested transition, mutates the record store only if every check passes,
// and produces at most one token-transfer instruction per request.
//
// Execution is strictly sequential: the host processes one request to
// completion before the next begins, and guarantees whole-request atomicity.
// If the host fails to execute an emitted transfer instruction it discards
// every mutation the engine made during the request, so the engine performs
// validation strictly before mutation and never compensates afterwards.
//
// Notes:
//   - Errors are returned synchronously and are never retried internally.
//   - Emitted instructions are returned, not executed; moving tokens is the
//     token ledger's job.
type Engine interface {
	// CreateLock custodies a new deposit under a release condition. The
	// caller becomes the lock's owner. The deposit itself is assumed already
	// escrowed by the inbound call; no transfer instruction is emitted.
	//
	// Returns:
	//   - The persisted record with status Locked.
	//   - ErrInvalidAmount, ErrInvalidReleaseCondition, ErrConditionTooFar
	//     or ErrInvalidParty.
	CreateLock(ctx context.Context, caller types.PartyID, req CreateLockRequest) (*types.LockRecord, error)

	// Release transitions a lock from Locked to Released and emits exactly
	// one transfer instruction sending the full amount to the recipient.
	//
	// Returns:
	//   - The updated record and the instruction on success.
	//   - ErrLockNotFound, ErrAlreadyFinalized, ErrUnauthorized or
	//     ErrNotYetReleasable.
	Release(ctx context.Context, caller types.PartyID, id types.LockID) (*types.LockRecord, *types.TransferInstruction, error)

	// Cancel transitions a lock from Locked to Cancelled and emits exactly
	// one transfer instruction returning the full amount to the owner.
	// Only the owner may cancel, and only before the release condition is
	// met; the cancel window closes once release becomes possible.
	//
	// Returns:
	//   - The updated record and the instruction on success.
	//   - ErrLockNotFound, ErrAlreadyFinalized, ErrUnauthorized or
	//     ErrCancelWindowClosed.
	Cancel(ctx context.Context, caller types.PartyID, id types.LockID) (*types.LockRecord, *types.TransferInstruction, error)

	// GetLock returns the full record for the given id, terminal or not.
	//
	// Returns ErrLockNotFound if no such record exists.
	GetLock(ctx context.Context, id types.LockID) (*types.LockRecord, error)

	// ListLocksByOwner returns every lock ever created by the given owner in
	// insertion order, optionally narrowed by a filter. A nil filter matches
	// all locks.
	ListLocksByOwner(ctx context.Context, owner types.PartyID, filter LockFilter) ([]*types.LockRecord, error)

	// ListLocksByRecipient returns every lock ever created naming the given
	// recipient in insertion order, optionally narrowed by a filter.
	ListLocksByRecipient(ctx context.Context, recipient types.PartyID, filter LockFilter) ([]*types.LockRecord, error)
}

// CreateLockRequest carries the caller-supplied parameters of a deposit.
type CreateLockRequest struct {
	// Recipient is the identity entitled to receive released funds.
	Recipient types.PartyID

	// Token references the ledger denomination being custodied.
	Token types.TokenID

	// Amount is the custodied quantity in the token's smallest unit.
	Amount types.Amount

	// Condition is the time or height threshold gating release.
	Condition types.ReleaseCondition
}
