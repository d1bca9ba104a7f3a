package handlers

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/types"
	"encoding/json"
	"net/http"
	"strings"
)

func (s *Server) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Logger.Warn("Invalid chat request body:", err)
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := s.Sessions.Get(req.SessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	reply, err := sess.Send(r.Context(), req.Message, req.Validate)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toChatResponse(sess.ID, strings.TrimSpace(req.Message), reply))
}

func (s *Server) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, "Missing session_id", http.StatusBadRequest)
		return
	}

	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.GetMessagesResponse{
		Success:  true,
		Messages: sess.History(),
		Status:   sess.Status(),
	})
}

// AcceptHandler keeps the reply under review.
func (s *Server) AcceptHandler(w http.ResponseWriter, r *http.Request) {
	var req types.SessionActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := s.Sessions.Get(req.SessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	if err := sess.Accept(); err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.ChatResponse{Success: true, SessionID: sess.ID})
}

// RegenerateHandler replaces the reply under review with a new one.
func (s *Server) RegenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req types.SessionActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := s.Sessions.Get(req.SessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	reply, err := sess.Regenerate(r.Context())
	if err != nil {
		writeSessionError(w, err)
		return
	}

	config.Logger.WithField("session_id", sess.ID).Debug("Response regenerated")
	writeJSON(w, http.StatusOK, toChatResponse(sess.ID, "", reply))
}
