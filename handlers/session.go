package handlers

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/middleware"
	"clementus360/gal-bestfriend/types"
	"encoding/json"
	"net/http"
)

// CreateSessionHandler finishes onboarding and posts the greeting.
func (s *Server) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Logger.Warn("Invalid session request body:", err)
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess := s.Sessions.Create(r.Context(), middleware.OwnerFromContext(r.Context()), req.Profile)
	profile := sess.Profile()

	writeJSON(w, http.StatusCreated, types.SessionResponse{
		Success:   true,
		SessionID: sess.ID,
		Profile:   &profile,
		Messages:  sess.History(),
	})
}

func (s *Server) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("id")
	if sessionID == "" {
		config.Logger.Warn("Missing session ID in request")
		writeError(w, "Missing session ID", http.StatusBadRequest)
		return
	}

	if err := s.Sessions.Delete(r.Context(), sessionID); err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.SessionResponse{
		Success:   true,
		SessionID: sessionID,
	})
}

// UpdateSettingsHandler applies settings-panel changes and saves them.
func (s *Server) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req types.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Logger.Warn("Invalid settings request body:", err)
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := s.Sessions.Get(req.SessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	profile := sess.UpdateSettings(req)
	s.Sessions.Persist(r.Context(), sess)

	writeJSON(w, http.StatusOK, types.SessionResponse{
		Success:   true,
		SessionID: sess.ID,
		Profile:   &profile,
	})
}
