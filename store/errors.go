package store

import "errors"

var (
	// ErrLockNotFound indicates that the referenced id has no record.
	ErrLockNotFound = errors.New("store: lock not found")

	// ErrDuplicateID indicates an attempt to insert a record under an id
	// that already exists. Should not occur under correct id generation.
	ErrDuplicateID = errors.New("store: duplicate lock id")

	// ErrNilRecord indicates a Put with a nil record or an empty id.
	ErrNilRecord = errors.New("store: nil record or empty id")

	// ErrStoreIO is returned when a low-level I/O failure occurs during a
	// persistence operation.
	ErrStoreIO = errors.New("store: storage I/O error")

	// ErrCorruptedState is returned when the persisted lock state is
	// malformed or unreadable.
	ErrCorruptedState = errors.New("store: corrupted persistent state")

	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("store: store closed")
)
