package store

import (
	"encoding/json"

	"github.com/giansalex/cw-lockbox/types"
)

// lockboxState is the persisted snapshot of a store: the primary record map
// plus both secondary indices and the id sequence.
type lockboxState struct {
	Records        map[types.LockID]*types.LockRecord `json:"records"`
	OwnerIndex     map[types.PartyID][]types.LockID   `json:"owner_index"`
	RecipientIndex map[types.PartyID][]types.LockID   `json:"recipient_index"`
	NextSeq        uint64                             `json:"next_seq"`
}

// Serializer defines the interface for encoding and decoding store state.
type Serializer interface {
	// EncodeState serializes a store snapshot into a byte slice.
	EncodeState(state lockboxState) ([]byte, error)

	// DecodeState deserializes a byte slice into a store snapshot.
	DecodeState(data []byte) (lockboxState, error)
}

// JSONSerializer implements the Serializer interface using JSON encoding.
type JSONSerializer struct{}

// EncodeState marshals a snapshot of the store state.
func (s *JSONSerializer) EncodeState(state lockboxState) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeState unmarshals a byte slice into a store snapshot.
func (s *JSONSerializer) DecodeState(data []byte) (lockboxState, error) {
	var state lockboxState
	err := json.Unmarshal(data, &state)
	return state, err
}
