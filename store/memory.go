package store

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/giansalex/cw-lockbox/logger"
	"github.com/giansalex/cw-lockbox/types"
)

// MemoryStore is an in-memory LockRecordStore. It is the deterministic
// substitute used in tests and the base layer of the file-backed store.
type MemoryStore struct {
	mu sync.RWMutex

	records        map[types.LockID]*types.LockRecord
	ownerIndex     map[types.PartyID][]types.LockID // append-only, insertion order
	recipientIndex map[types.PartyID][]types.LockID // append-only, insertion order
	nextSeq        uint64

	logger logger.Logger
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log logger.Logger) *MemoryStore {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &MemoryStore{
		records:        make(map[types.LockID]*types.LockRecord),
		ownerIndex:     make(map[types.PartyID][]types.LockID),
		recipientIndex: make(map[types.PartyID][]types.LockID),
		nextSeq:        1,
		logger:         log.WithComponent("store"),
	}
}

// NextID issues a fresh lock identifier from a monotonic sequence.
func (s *MemoryStore) NextID() types.LockID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := types.LockID(fmt.Sprintf("lock-%d", s.nextSeq))
	s.nextSeq++
	return id
}

// Put inserts a new record and appends it to both secondary indices.
func (s *MemoryStore) Put(ctx context.Context, record *types.LockRecord) error {
	if record == nil || record.ID == "" {
		return ErrNilRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, exists := s.records[record.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
	}

	s.records[record.ID] = record.Clone()
	s.ownerIndex[record.Owner] = append(s.ownerIndex[record.Owner], record.ID)
	s.recipientIndex[record.Recipient] = append(s.recipientIndex[record.Recipient], record.ID)

	s.logger.Debugw("Stored lock record",
		"lock", record.ID,
		"owner", record.Owner,
		"recipient", record.Recipient)
	return nil
}

// Get returns a copy of the record with the given id.
func (s *MemoryStore) Get(ctx context.Context, id types.LockID) (*types.LockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLockNotFound, id)
	}
	return record.Clone(), nil
}

// Update applies a transition to an existing record: read, validate, write.
// The mutator runs against a copy; the stored record is replaced only if the
// mutator returns nil.
func (s *MemoryStore) Update(ctx context.Context, id types.LockID, mutate func(*types.LockRecord) error) (*types.LockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLockNotFound, id)
	}

	updated := record.Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}

	s.records[id] = updated
	s.logger.Debugw("Updated lock record", "lock", id, "status", updated.Status)
	return updated.Clone(), nil
}

// ListByOwner returns the ids of all locks ever created with the given owner,
// in insertion order. The sequence is restartable; each range re-reads the
// index.
func (s *MemoryStore) ListByOwner(owner types.PartyID) iter.Seq[types.LockID] {
	return s.listIndex(s.ownerIndex, owner)
}

// ListByRecipient returns the ids of all locks ever created with the given
// recipient, in insertion order.
func (s *MemoryStore) ListByRecipient(recipient types.PartyID) iter.Seq[types.LockID] {
	return s.listIndex(s.recipientIndex, recipient)
}

func (s *MemoryStore) listIndex(index map[types.PartyID][]types.LockID, party types.PartyID) iter.Seq[types.LockID] {
	return func(yield func(types.LockID) bool) {
		s.mu.RLock()
		ids := index[party]
		snapshot := make([]types.LockID, len(ids))
		copy(snapshot, ids)
		s.mu.RUnlock()

		for _, id := range snapshot {
			if !yield(id) {
				return
			}
		}
	}
}

// Len returns the total number of records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ActiveLen returns the number of records still custodied.
func (s *MemoryStore) ActiveLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := 0
	for _, record := range s.records {
		if record.Status == types.StatusLocked {
			active++
		}
	}
	return active
}

// Close marks the store closed. Subsequent mutations fail with ErrStoreClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// snapshot captures the full store state for persistence.
func (s *MemoryStore) snapshot() lockboxState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := lockboxState{
		Records:        make(map[types.LockID]*types.LockRecord, len(s.records)),
		OwnerIndex:     make(map[types.PartyID][]types.LockID, len(s.ownerIndex)),
		RecipientIndex: make(map[types.PartyID][]types.LockID, len(s.recipientIndex)),
		NextSeq:        s.nextSeq,
	}
	for id, record := range s.records {
		state.Records[id] = record.Clone()
	}
	for party, ids := range s.ownerIndex {
		state.OwnerIndex[party] = append([]types.LockID(nil), ids...)
	}
	for party, ids := range s.recipientIndex {
		state.RecipientIndex[party] = append([]types.LockID(nil), ids...)
	}
	return state
}

// restore replaces the store state with a decoded snapshot.
func (s *MemoryStore) restore(state lockboxState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = state.Records
	s.ownerIndex = state.OwnerIndex
	s.recipientIndex = state.RecipientIndex
	s.nextSeq = state.NextSeq

	if s.records == nil {
		s.records = make(map[types.LockID]*types.LockRecord)
	}
	if s.ownerIndex == nil {
		s.ownerIndex = make(map[types.PartyID][]types.LockID)
	}
	if s.recipientIndex == nil {
		s.recipientIndex = make(map[types.PartyID][]types.LockID)
	}
	if s.nextSeq == 0 {
		s.nextSeq = 1
	}
}
