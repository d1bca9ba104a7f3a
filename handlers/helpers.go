package handlers

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/session"
	"clementus360/gal-bestfriend/types"
	"encoding/json"
	"errors"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	resp := types.ChatResponse{
		Success:      false,
		ErrorMessage: message,
	}
	writeJSON(w, status, resp)

}

// writeSessionError maps session errors to a status code.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, session.ErrEmptyMessage):
		writeError(w, "Message cannot be empty", http.StatusBadRequest)
	case errors.Is(err, session.ErrReplyPending):
		writeError(w, "A reply is still being written", http.StatusConflict)
	case errors.Is(err, session.ErrNothingPending):
		writeError(w, "No response is awaiting review", http.StatusConflict)
	case errors.Is(err, session.ErrNoUserMessage):
		writeError(w, "Nothing to respond to yet", http.StatusConflict)
	default:
		config.Logger.Error("Unexpected session error: ", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func toChatResponse(sessionID, userMessage string, reply session.Reply) types.ChatResponse {
	return types.ChatResponse{
		Success:     true,
		UserMessage: userMessage,
		AIResponse:  reply.Text,
		Source:      string(reply.Source),
		Validation:  reply.Validation,
		Pending:     reply.Pending,
		SessionID:   sessionID,
	}
}
