package types

import "slices"

// String helps with making status values more readable in logs and debug output.
func (s LockStatus) String() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusReleased:
		return "Released"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsValid checks if the status is one of the defined lifecycle states.
func (s LockStatus) IsValid() bool {
	return s == StatusLocked || s == StatusReleased || s == StatusCancelled
}

// IsTerminal reports whether the status is a terminal state.
func (s LockStatus) IsTerminal() bool {
	return s == StatusReleased || s == StatusCancelled
}

// transitions maps the valid status transitions of the lock lifecycle.
// Terminal states have no outgoing transitions.
var transitions = map[LockStatus][]LockStatus{
	StatusLocked:    {StatusReleased, StatusCancelled},
	StatusReleased:  {},
	StatusCancelled: {},
}

// CanTransitionTo checks if a transition from the current status to the target status is valid.
func (s LockStatus) CanTransitionTo(target LockStatus) bool {
	validTargets, exists := transitions[s]
	if !exists {
		return false
	}

	return slices.Contains(validTargets, target)
}

// String helps with making policy values more readable in logs and debug output.
func (p ReleasePolicy) String() string {
	switch p {
	case ReleaseRecipientOnly:
		return "RecipientOnly"
	case ReleaseOwnerOrRecipient:
		return "OwnerOrRecipient"
	case ReleaseAnyone:
		return "Anyone"
	default:
		return "Unknown"
	}
}

// IsValid checks if the policy is one of the defined release policy variants.
func (p ReleasePolicy) IsValid() bool {
	return p == ReleaseRecipientOnly || p == ReleaseOwnerOrRecipient || p == ReleaseAnyone
}

// String helps with making condition kinds more readable in logs and debug output.
func (k ConditionKind) String() string {
	switch k {
	case ConditionTime:
		return "Time"
	case ConditionHeight:
		return "Height"
	default:
		return "Unknown"
	}
}
