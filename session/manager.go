package session

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/types"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultAutosaveInterval matches how often the browser client saved its
// state.
const DefaultAutosaveInterval = 30 * time.Second

// DefaultIdleTimeout is how long an untouched session stays in memory.
const DefaultIdleTimeout = 2 * time.Hour

// PreferenceStore keeps the saved-state blob per owner. Load returns nil, nil
// when nothing is stored.
type PreferenceStore interface {
	Save(ctx context.Context, owner string, state types.SavedState) error
	Load(ctx context.Context, owner string) (*types.SavedState, error)
}

// Manager holds the live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store PreferenceStore
	opts  Options
}

// NewManager creates a manager. store may be nil, in which case nothing is
// persisted.
func NewManager(store PreferenceStore, opts Options) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		opts:     opts,
	}
}

// Create starts a new session for the onboarding profile. When the profile
// carries no color theme, the owner's saved theme is restored.
func (m *Manager) Create(ctx context.Context, owner string, profile types.UserProfile) *Session {
	id := uuid.New().String()
	if owner == "" {
		owner = id
	}

	if profile.ColorTheme == "" {
		if theme := m.savedTheme(ctx, owner); theme != "" {
			profile.ColorTheme = theme
		}
	}

	s := New(id, owner, profile, m.opts)
	s.Start()

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	config.Logger.WithFields(logrus.Fields{
		"session_id": id,
		"situation":  s.Profile().Situation,
	}).Info("Session created")

	m.Persist(ctx, s)
	return s
}

func (m *Manager) savedTheme(ctx context.Context, owner string) string {
	if m.store == nil {
		return ""
	}
	state, err := m.store.Load(ctx, owner)
	if err != nil {
		config.Logger.Debug("Could not load saved state: ", err)
		return ""
	}
	if state == nil {
		return ""
	}
	if _, ok := types.ColorThemes[state.User.ColorTheme]; !ok {
		return ""
	}
	return state.User.ColorTheme
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session after saving its preferences one last time.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	m.Persist(ctx, s)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) now() time.Time {
	if m.opts.Now != nil {
		return m.opts.Now()
	}
	return time.Now()
}

// Persist saves the session's profile. Failures are logged and swallowed.
func (m *Manager) Persist(ctx context.Context, s *Session) {
	if m.store == nil {
		return
	}
	state := types.NewSavedState(s.Profile(), m.now())
	if err := m.store.Save(ctx, s.Owner, state); err != nil {
		config.Logger.WithField("session_id", s.ID).Warn("Could not save state: ", err)
	}
}

// SaveAll persists every live session.
func (m *Manager) SaveAll(ctx context.Context) {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		m.Persist(ctx, s)
	}
}

// EvictIdle saves and drops every session idle for longer than maxIdle and
// returns how many were dropped.
func (m *Manager) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	if maxIdle <= 0 {
		maxIdle = DefaultIdleTimeout
	}
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if s.IdleSince(cutoff) {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		m.Persist(ctx, s)
		config.Logger.WithField("session_id", s.ID).Info("Session evicted after inactivity")
	}
	return len(idle)
}

// RunAutosave saves all sessions every interval, then evicts the ones idle
// longer than maxIdle. It returns when ctx is done.
func (m *Manager) RunAutosave(ctx context.Context, interval, maxIdle time.Duration) {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SaveAll(ctx)
			m.EvictIdle(ctx, maxIdle)
			config.Logger.Debug("Autosaved sessions")
		}
	}
}
