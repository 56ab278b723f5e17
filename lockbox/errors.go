package lockbox

import (
	"errors"

	"github.com/giansalex/cw-lockbox/store"
)

var (
	// ErrInvalidAmount indicates a creation with a non-positive amount.
	ErrInvalidAmount = errors.New("lockbox: amount must be strictly positive")

	// ErrInvalidReleaseCondition indicates a creation whose condition is not
	// in the future, or is malformed.
	ErrInvalidReleaseCondition = errors.New("lockbox: release condition must lie in the future")

	// ErrConditionTooFar indicates a creation whose condition lies beyond the
	// configured maximum lock duration or height delta.
	ErrConditionTooFar = errors.New("lockbox: release condition exceeds the maximum lock duration")

	// ErrInvalidParty indicates an empty caller or recipient identity.
	ErrInvalidParty = errors.New("lockbox: party identity cannot be empty")

	// ErrLockNotFound indicates that the referenced id has no record.
	ErrLockNotFound = store.ErrLockNotFound

	// ErrUnauthorized indicates the caller fails the authorization policy
	// for the requested action.
	ErrUnauthorized = errors.New("lockbox: caller is not authorized for this action")

	// ErrNotYetReleasable indicates a Release attempted before the lock's
	// condition is met.
	ErrNotYetReleasable = errors.New("lockbox: release condition not yet met")

	// ErrAlreadyFinalized indicates a Release or Cancel attempted on a lock
	// already Released or Cancelled.
	ErrAlreadyFinalized = errors.New("lockbox: lock already finalized")

	// ErrCancelWindowClosed indicates a Cancel attempted after the release
	// condition has been met.
	ErrCancelWindowClosed = errors.New("lockbox: cancel window closed once release is possible")
)
