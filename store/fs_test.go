package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
)

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	fs, err := NewFileStore(dir, nil)
	testutil.RequireNoError(t, err)

	id := fs.NextID()
	rec := newTestRecord(id, "alice", "bob")
	testutil.RequireNoError(t, fs.Put(ctx, rec))

	_, err = fs.Update(ctx, id, func(r *types.LockRecord) error {
		r.Status = types.StatusReleased
		return nil
	})
	testutil.RequireNoError(t, err)
	testutil.RequireNoError(t, fs.Close())

	reopened, err := NewFileStore(dir, nil)
	testutil.RequireNoError(t, err)

	got, err := reopened.Get(ctx, id)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, types.StatusReleased, got.Status)
	testutil.AssertEqual(t, types.PartyID("alice"), got.Owner)

	testutil.AssertEqual(t, []types.LockID{id}, collectIDs(reopened.ListByOwner("alice")),
		"secondary index must survive reopen")

	// The id sequence continues rather than restarting
	next := reopened.NextID()
	testutil.AssertNotEqual(t, id, next, "reopened store must not reissue ids")
}

func TestFileStore_EmptyDirStartsEmpty(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), nil)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, 0, fs.Len())
}

func TestFileStore_CorruptedStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, stateFileName)
	testutil.RequireNoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(dir, nil)
	testutil.AssertErrorIs(t, err, ErrCorruptedState)
}

func TestFileStore_FailedMutationNotPersisted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	fs, err := NewFileStore(dir, nil)
	testutil.RequireNoError(t, err)
	testutil.RequireNoError(t, fs.Put(ctx, newTestRecord("lock-1", "alice", "bob")))

	err = fs.Put(ctx, newTestRecord("lock-1", "carol", "dave"))
	testutil.AssertErrorIs(t, err, ErrDuplicateID)
	testutil.RequireNoError(t, fs.Close())

	reopened, err := NewFileStore(dir, nil)
	testutil.RequireNoError(t, err)
	got, err := reopened.Get(ctx, "lock-1")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, types.PartyID("alice"), got.Owner, "rejected Put must leave persisted state untouched")
}

// brokenSerializer fails encoding on demand to exercise persist failures.
type brokenSerializer struct {
	json JSONSerializer
	fail bool
}

func (s *brokenSerializer) EncodeState(state lockboxState) ([]byte, error) {
	if s.fail {
		return nil, errors.New("encode exploded")
	}
	return s.json.EncodeState(state)
}

func (s *brokenSerializer) DecodeState(data []byte) (lockboxState, error) {
	return s.json.DecodeState(data)
}

func TestFileStore_PersistFailureRollsBackUpdate(t *testing.T) {
	ctx := context.Background()

	fs, err := NewFileStore(t.TempDir(), nil)
	testutil.RequireNoError(t, err)

	id := fs.NextID()
	testutil.RequireNoError(t, fs.Put(ctx, newTestRecord(id, "alice", "bob")))

	broken := &brokenSerializer{fail: true}
	fs.serializer = broken

	finalize := func(r *types.LockRecord) error {
		if r.Status.IsTerminal() {
			return errors.New("already terminal")
		}
		r.Status = types.StatusReleased
		return nil
	}

	_, err = fs.Update(ctx, id, finalize)
	testutil.AssertErrorIs(t, err, ErrStoreIO)

	// The in-memory record must still be in its prior status, not stranded
	// in a terminal state the caller never observed committing.
	got, err := fs.Get(ctx, id)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, types.StatusLocked, got.Status,
		"failed persist must not leave the transition applied in memory")

	// Once the disk recovers the same transition must succeed.
	broken.fail = false
	updated, err := fs.Update(ctx, id, finalize)
	testutil.RequireNoError(t, err, "retry after persist recovery must succeed")
	testutil.AssertEqual(t, types.StatusReleased, updated.Status)
}

func TestFileStore_PersistFailureRollsBackPut(t *testing.T) {
	ctx := context.Background()

	fs, err := NewFileStore(t.TempDir(), nil)
	testutil.RequireNoError(t, err)
	fs.serializer = &brokenSerializer{fail: true}

	id := fs.NextID()
	err = fs.Put(ctx, newTestRecord(id, "alice", "bob"))
	testutil.AssertErrorIs(t, err, ErrStoreIO)

	_, err = fs.Get(ctx, id)
	testutil.AssertErrorIs(t, err, ErrLockNotFound,
		"failed persist must not leave the record in memory")
	testutil.AssertLen(t, collectIDs(fs.ListByOwner("alice")), 0,
		"failed persist must not leave index entries behind")
}

func TestJSONSerializer_RoundTrip(t *testing.T) {
	s := &JSONSerializer{}

	state := lockboxState{
		Records: map[types.LockID]*types.LockRecord{
			"lock-1": newTestRecord("lock-1", "alice", "bob"),
		},
		OwnerIndex:     map[types.PartyID][]types.LockID{"alice": {"lock-1"}},
		RecipientIndex: map[types.PartyID][]types.LockID{"bob": {"lock-1"}},
		NextSeq:        2,
	}

	data, err := s.EncodeState(state)
	testutil.RequireNoError(t, err)

	decoded, err := s.DecodeState(data)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, state, decoded)

	_, err = s.DecodeState([]byte("not json"))
	testutil.AssertError(t, err)
}
