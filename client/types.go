package client

import (
	"time"

	"github.com/giansalex/cw-lockbox/types"
)

// CreateLockRequest carries the parameters of a new deposit.
// Exactly one of ReleaseAt and ReleaseHeight must be set.
type CreateLockRequest struct {
	// Caller is the depositor's identity; it becomes the lock's owner.
	Caller types.PartyID

	// Recipient is the identity entitled to receive released funds.
	Recipient types.PartyID

	// Token references the ledger denomination being custodied.
	Token types.TokenID

	// Amount is the custodied quantity in the token's smallest unit.
	Amount types.Amount

	// ReleaseAt gates release on block time when non-zero.
	ReleaseAt time.Time

	// ReleaseHeight gates release on block height when non-zero.
	ReleaseHeight types.BlockHeight
}

// CreateLockResult is the outcome of a successful CreateLock call.
type CreateLockResult struct {
	// LockID is the store-assigned identifier of the new lock.
	LockID types.LockID

	// Lock is the stored record with status Locked.
	Lock *types.LockRecord
}

// ReleaseRequest identifies the lock to release and who is asking.
type ReleaseRequest struct {
	Caller types.PartyID
	LockID types.LockID
}

// ReleaseResult is the outcome of a successful Release call.
type ReleaseResult struct {
	// Lock is the terminal record with status Released.
	Lock *types.LockRecord

	// Transfer pays the full amount to the recipient.
	Transfer *types.TransferInstruction
}

// CancelRequest identifies the lock to cancel and who is asking.
type CancelRequest struct {
	Caller types.PartyID
	LockID types.LockID
}

// CancelResult is the outcome of a successful Cancel call.
type CancelResult struct {
	// Lock is the terminal record with status Cancelled.
	Lock *types.LockRecord

	// Transfer refunds the full amount to the owner.
	Transfer *types.TransferInstruction
}

// ListLocksByOwnerRequest narrows a list query to one owner and
// optionally one status.
type ListLocksByOwnerRequest struct {
	Owner types.PartyID

	// Status narrows the result to locks in the given status when non-nil.
	Status *types.LockStatus
}

// ListLocksByRecipientRequest narrows a list query to one recipient and
// optionally one status.
type ListLocksByRecipientRequest struct {
	Recipient types.PartyID

	// Status narrows the result to locks in the given status when non-nil.
	Status *types.LockStatus
}

// ListLocksResult holds the records matching a list query in insertion order.
type ListLocksResult struct {
	Locks []*types.LockRecord
}
