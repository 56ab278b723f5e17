package lockbox

import (
	"time"

	"github.com/giansalex/cw-lockbox/types"
)

// conditionMet reports whether the release condition has been reached at the
// given block time and height. The comparison is a total order on a single
// axis: once true for an observed time/height it stays true for every later
// one, assuming the host's clock never regresses.
func conditionMet(cond types.ReleaseCondition, now time.Time, height types.BlockHeight) bool {
	switch cond.Kind {
	case types.ConditionTime:
		return !now.Before(cond.ReleaseAt)
	case types.ConditionHeight:
		return height >= cond.ReleaseHeight
	default:
		return false
	}
}

// validateCondition checks a creation-time condition: it must name a valid
// axis, lie strictly in the future, and not exceed the configured bounds.
func validateCondition(cond types.ReleaseCondition, now time.Time, height types.BlockHeight, maxDuration time.Duration, maxHeightDelta types.BlockHeight) error {
	switch cond.Kind {
	case types.ConditionTime:
		if cond.ReleaseAt.IsZero() || !cond.ReleaseAt.After(now) {
			return ErrInvalidReleaseCondition
		}
		if maxDuration > 0 && cond.ReleaseAt.Sub(now) > maxDuration {
			return ErrConditionTooFar
		}
	case types.ConditionHeight:
		if cond.ReleaseHeight <= height {
			return ErrInvalidReleaseCondition
		}
		if maxHeightDelta > 0 && cond.ReleaseHeight-height > maxHeightDelta {
			return ErrConditionTooFar
		}
	default:
		return ErrInvalidReleaseCondition
	}
	return nil
}
