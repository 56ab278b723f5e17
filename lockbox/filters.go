package lockbox

import "github.com/giansalex/cw-lockbox/types"

// LockFilter defines a function that determines whether a given lock record
// satisfies specific criteria. Used in list queries.
type LockFilter func(*types.LockRecord) bool

var (
	// FilterByStatus returns a LockFilter that matches locks in the given status.
	FilterByStatus = func(status types.LockStatus) LockFilter {
		return func(lock *types.LockRecord) bool {
			return lock.Status == status
		}
	}

	// FilterByToken returns a LockFilter that matches locks custodying the given token.
	FilterByToken = func(token types.TokenID) LockFilter {
		return func(lock *types.LockRecord) bool {
			return lock.Token == token
		}
	}

	// FilterActive is a LockFilter that matches locks still custodied.
	FilterActive LockFilter = func(lock *types.LockRecord) bool {
		return lock.Status == types.StatusLocked
	}

	// FilterAll is a LockFilter that matches all locks unconditionally.
	FilterAll LockFilter = func(*types.LockRecord) bool {
		return true
	}
)
