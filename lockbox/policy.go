package lockbox

import (
	"fmt"

	"github.com/giansalex/cw-lockbox/types"
)

// Action enumerates the operations subject to authorization.
type Action int

const (
	// ActionCreate is the creation of a new lock.
	ActionCreate Action = iota

	// ActionRelease is the condition-gated release of custodied funds.
	ActionRelease

	// ActionCancel is the owner's cancellation of a still-locked deposit.
	ActionCancel
)

// String helps with making actions readable in logs and errors.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "CreateLock"
	case ActionRelease:
		return "Release"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// authorize is the pure identity predicate deciding whether caller may
// perform action on lock under the given release policy.
//
// It checks identity only. Timing rules (the release condition for Release,
// the narrowing window for Cancel) are enforced separately by the engine so
// each failure surfaces its own error kind.
func authorize(policy types.ReleasePolicy, action Action, lock *types.LockRecord, caller types.PartyID) error {
	switch action {
	case ActionCreate:
		// Any caller may create a lock naming themselves as owner; the
		// engine sets owner = caller, so there is nothing to check here.
		return nil

	case ActionRelease:
		switch policy {
		case types.ReleaseAnyone:
			return nil
		case types.ReleaseOwnerOrRecipient:
			if caller == lock.Recipient || caller == lock.Owner {
				return nil
			}
		case types.ReleaseRecipientOnly:
			if caller == lock.Recipient {
				return nil
			}
		}
		return fmt.Errorf("%w: %s may not release lock %s under policy %s",
			ErrUnauthorized, caller, lock.ID, policy)

	case ActionCancel:
		if caller == lock.Owner {
			return nil
		}
		return fmt.Errorf("%w: %s may not cancel lock %s owned by %s",
			ErrUnauthorized, caller, lock.ID, lock.Owner)

	default:
		return fmt.Errorf("%w: unknown action %d", ErrUnauthorized, action)
	}
}
