package types

import "time"

// LockID uniquely identifies a lock record within the lockbox.
// It is assigned by the record store at creation and never reused.
type LockID string

// PartyID identifies a depositor, recipient or caller.
// Identity is authenticated upstream by the host; the engine treats it as opaque.
type PartyID string

// TokenID references the token ledger denomination being custodied,
// e.g. a native denom or a token contract address.
type TokenID string

// Amount is a token quantity denominated in the token's smallest unit.
type Amount uint64

// BlockHeight is the host chain's block height.
type BlockHeight uint64

// LockStatus represents the lifecycle state of a lock.
// Transitions are one-way: Locked -> Released or Locked -> Cancelled.
type LockStatus int

const (
	// StatusLocked is the initial state: funds are custodied and neither
	// released nor cancelled.
	StatusLocked LockStatus = iota

	// StatusReleased is terminal: funds were transferred to the recipient.
	StatusReleased

	// StatusCancelled is terminal: funds were returned to the owner.
	StatusCancelled
)

// ConditionKind selects the axis a release condition is evaluated on.
type ConditionKind int

const (
	// ConditionTime gates release on the host's block time.
	ConditionTime ConditionKind = iota

	// ConditionHeight gates release on the host's block height.
	ConditionHeight
)

// ReleaseCondition is an absolute time or block-height threshold after which
// release is permitted. Exactly one axis applies; conditions cannot be
// combined. Once set on a lock it is immutable.
type ReleaseCondition struct {
	Kind ConditionKind `json:"kind"`

	// ReleaseAt is the threshold block time. Valid only when Kind == ConditionTime.
	ReleaseAt time.Time `json:"release_at,omitempty"`

	// ReleaseHeight is the threshold block height. Valid only when Kind == ConditionHeight.
	ReleaseHeight BlockHeight `json:"release_height,omitempty"`
}

// LockRecord is the central custody entity. All fields except Status are
// immutable after creation; Status transitions exactly once.
type LockRecord struct {
	ID        LockID           `json:"id"`
	Owner     PartyID          `json:"owner"`
	Recipient PartyID          `json:"recipient"`
	Token     TokenID          `json:"token"`
	Amount    Amount           `json:"amount"`
	Condition ReleaseCondition `json:"condition"`
	Status    LockStatus       `json:"status"`

	// CreatedAt is the block time at creation, kept for auditability.
	CreatedAt time.Time `json:"created_at"`

	// FinalizedAt is the block time of the terminal transition.
	// Zero while the lock is still Locked.
	FinalizedAt time.Time `json:"finalized_at,omitempty"`
}

// Clone returns a deep copy of the record so callers can hand out lock
// information without exposing the store's canonical copy.
func (r *LockRecord) Clone() *LockRecord {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// TransferInstruction is the single outbound instruction an approved Release
// or Cancel produces. It is returned to the host for execution against the
// token ledger; the engine never executes it itself.
type TransferInstruction struct {
	Token       TokenID `json:"token"`
	Amount      Amount  `json:"amount"`
	Beneficiary PartyID `json:"beneficiary"`

	// LockID identifies the lock the instruction settles, for host-side audit.
	LockID LockID `json:"lock_id"`
}

// ReleasePolicy is the closed set of authorization variants for Release.
// Release timing is always condition-gated; the policy only widens who may
// trigger it.
type ReleasePolicy int

const (
	// ReleaseRecipientOnly permits Release only by the lock's recipient.
	ReleaseRecipientOnly ReleasePolicy = iota

	// ReleaseOwnerOrRecipient permits Release by the owner or the recipient.
	ReleaseOwnerOrRecipient

	// ReleaseAnyone permits Release by any caller once the condition is met.
	ReleaseAnyone
)
