package supabase

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"
)

const preferencesTable = "preferences"

type preferenceRow struct {
	OwnerID   string           `json:"owner_id"`
	State     types.SavedState `json:"state"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PreferenceStore keeps the saved state in a "preferences" table keyed by
// owner_id.
type PreferenceStore struct {
	client *supabase.Client
}

func NewPreferenceStore(client *supabase.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

// Save upserts the owner's row.
func (s *PreferenceStore) Save(ctx context.Context, owner string, state types.SavedState) error {
	row := preferenceRow{
		OwnerID:   owner,
		State:     state,
		UpdatedAt: time.Now(),
	}

	_, _, err := s.client.From(preferencesTable).
		Upsert(row, "owner_id", "minimal", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Load returns nil, nil when the owner has no row.
func (s *PreferenceStore) Load(ctx context.Context, owner string) (*types.SavedState, error) {
	resp, _, err := s.client.From(preferencesTable).
		Select("*", "", false).
		Eq("owner_id", owner).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}

	var rows []preferenceRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0].State, nil
}

// Close is a no-op; the client holds no connections of its own.
func (s *PreferenceStore) Close() error {
	return nil
}
