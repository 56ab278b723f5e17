package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/giansalex/cw-lockbox/logger"
	"github.com/giansalex/cw-lockbox/types"
)

const (
	// stateFileName is the file the full lock state is persisted to.
	stateFileName = "locks.json"

	// tmpSuffix is appended to the state file name during atomic writes.
	tmpSuffix = ".tmp"

	// stateFilePerm is the permission mode for persisted state files.
	stateFilePerm = 0o644
)

// FileStore is a LockRecordStore that persists every committed mutation to
// disk. All reads are served from memory; the on-disk snapshot is rewritten
// atomically (write to a temp file, then rename) after each Put or Update, so
// a crash never leaves a half-written state file.
type FileStore struct {
	*MemoryStore

	dir        string
	serializer Serializer
	logger     logger.Logger
}

// NewFileStore opens (or creates) a file-backed store rooted at dir.
// Existing state is loaded before the store is returned.
func NewFileStore(dir string, log logger.Logger) (*FileStore, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create data dir %q: %v", ErrStoreIO, dir, err)
	}

	fs := &FileStore{
		MemoryStore: NewMemoryStore(log),
		dir:         dir,
		serializer:  &JSONSerializer{},
		logger:      log.WithComponent("filestore"),
	}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Put inserts a new record and persists the resulting state. If the disk
// write fails the in-memory insertion is rolled back, so a failed Put leaves
// the store exactly as it was and the caller may retry.
func (fs *FileStore) Put(ctx context.Context, record *types.LockRecord) error {
	prior := fs.snapshot()
	if err := fs.MemoryStore.Put(ctx, record); err != nil {
		return err
	}
	if err := fs.persist(); err != nil {
		fs.restore(prior)
		return err
	}
	return nil
}

// Update applies a transition and persists the resulting state. If the disk
// write fails the in-memory transition is rolled back; the record stays in
// its prior status and the transition can be retried.
func (fs *FileStore) Update(ctx context.Context, id types.LockID, mutate func(*types.LockRecord) error) (*types.LockRecord, error) {
	prior := fs.snapshot()
	updated, err := fs.MemoryStore.Update(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	if err := fs.persist(); err != nil {
		fs.restore(prior)
		return nil, err
	}
	return updated, nil
}

// load reads the persisted state file, if any.
func (fs *FileStore) load() error {
	path := fs.stateFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: failed to read state file %q: %v", ErrStoreIO, path, err)
	}

	state, err := fs.serializer.DecodeState(data)
	if err != nil {
		return fmt.Errorf("%w: failed to decode state file %q: %v", ErrCorruptedState, path, err)
	}

	fs.restore(state)
	fs.logger.Infow("Loaded lock state", "records", fs.Len(), "path", path)
	return nil
}

// persist writes the current state to disk atomically.
func (fs *FileStore) persist() error {
	data, err := fs.serializer.EncodeState(fs.snapshot())
	if err != nil {
		return fmt.Errorf("%w: failed to encode state: %v", ErrStoreIO, err)
	}

	path := fs.stateFile()
	tmpPath := path + tmpSuffix
	if err := os.WriteFile(tmpPath, data, stateFilePerm); err != nil {
		return fmt.Errorf("%w: failed to write temp state file %q: %v", ErrStoreIO, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace state file %q: %v", ErrStoreIO, path, err)
	}
	return nil
}

func (fs *FileStore) stateFile() string {
	return filepath.Join(fs.dir, stateFileName)
}
