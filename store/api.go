package store

import (
	"context"
	"iter"

	"github.com/giansalex/cw-lockbox/types"
)

// LockRecordStore is the sole owner of all lock records. It provides keyed
// access to the primary record map plus owner- and recipient-scoped secondary
// indices maintained alongside the primary record on every Put and Update.
//
// Implementations are accessed within one request's atomic scope; the host
// guarantees whole-request atomicity, so no cross-request coordination is
// required beyond basic internal consistency.
type LockRecordStore interface {
	// NextID issues a fresh, never-reused lock identifier.
	NextID() types.LockID

	// Put inserts a new record under its id.
	//
	// Returns ErrDuplicateID if a record with the same id already exists.
	Put(ctx context.Context, record *types.LockRecord) error

	// Get returns a copy of the record with the given id.
	//
	// Returns ErrLockNotFound if no such record exists.
	Get(ctx context.Context, id types.LockID) (*types.LockRecord, error)

	// Update applies a transition to an existing record transactionally:
	// the mutator runs against a copy, and the copy replaces the stored
	// record only if the mutator returns nil.
	//
	// Returns ErrLockNotFound if no such record exists, or the mutator's
	// error unchanged.
	Update(ctx context.Context, id types.LockID, mutate func(*types.LockRecord) error) (*types.LockRecord, error)

	// ListByOwner returns a lazy, restartable sequence of the ids of all
	// locks ever created with the given owner, in insertion order.
	// Terminal locks remain listed.
	ListByOwner(owner types.PartyID) iter.Seq[types.LockID]

	// ListByRecipient returns a lazy, restartable sequence of the ids of all
	// locks ever created with the given recipient, in insertion order.
	// Terminal locks remain listed.
	ListByRecipient(recipient types.PartyID) iter.Seq[types.LockID]

	// Len returns the total number of records.
	Len() int

	// ActiveLen returns the number of records with status Locked.
	ActiveLen() int

	// Close releases any resources held by the store.
	Close() error
}
