package types

import "time"

// CreateSessionRequest is the completed onboarding wizard.
type CreateSessionRequest struct {
	Profile UserProfile `json:"profile"`
}

type SessionResponse struct {
	Success      bool               `json:"success"`
	SessionID    string             `json:"session_id,omitempty"`
	Profile      *UserProfile       `json:"profile,omitempty"`
	Messages     []ConversationTurn `json:"messages,omitempty"`
	ErrorMessage string             `json:"error,omitempty"`
}

// SavedState is the preference blob written to the key-value store.
type SavedState struct {
	User      UserProfile `json:"user"`
	Timestamp int64       `json:"timestamp"` // unix millis
}

func NewSavedState(user UserProfile, at time.Time) SavedState {
	return SavedState{User: user, Timestamp: at.UnixMilli()}
}
