// Package persistence stores the per-owner preference blob the chat restores
// its color theme from.
package persistence

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"encoding/json"
	"errors"
)

// StateKey is the key the saved state lives under, namespaced by owner.
const StateKey = "galBestfriend_state"

var (
	ErrInvalidDriver = errors.New("invalid store driver")
	ErrInvalidConfig = errors.New("invalid store configuration")
)

// Store keeps one SavedState per owner. Load returns nil, nil when nothing
// has been saved yet.
type Store interface {
	Save(ctx context.Context, owner string, state types.SavedState) error
	Load(ctx context.Context, owner string) (*types.SavedState, error)
	Close() error
}

// Key returns the storage key for owner.
func Key(owner string) string {
	return StateKey + ":" + owner
}

func marshalState(state types.SavedState) (string, error) {
	b, err := json.Marshal(state)
	return string(b), err
}

func unmarshalState(b []byte) (*types.SavedState, error) {
	var state types.SavedState
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
