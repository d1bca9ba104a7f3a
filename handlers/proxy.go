package handlers

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/llm"
	"clementus360/gal-bestfriend/types"
	"encoding/json"
	"net/http"
	"strings"
)

// ProxyChatHandler answers one message with the configured provider. It keeps
// no memory: everything it knows arrives in the request context.
func (s *Server) ProxyChatHandler(w http.ResponseWriter, r *http.Request) {
	var req types.ProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Logger.Warn("Invalid proxy request body:", err)
		writeJSON(w, http.StatusBadRequest, types.ProxyResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, types.ProxyResponse{Error: "Message cannot be empty"})
		return
	}

	if s.Upstream == nil {
		config.Logger.Error("No AI provider configured for /api/chat")
		writeJSON(w, http.StatusInternalServerError, types.ProxyResponse{Error: "AI service error"})
		return
	}

	reply, err := s.Upstream.Reply(r.Context(), req.Message, req.Context)
	if err != nil {
		config.Logger.Error("AI provider error:", err)
		writeJSON(w, http.StatusInternalServerError, types.ProxyResponse{Error: "AI service error"})
		return
	}
	if strings.TrimSpace(reply) == "" {
		reply = llm.FallbackReply
	}

	writeJSON(w, http.StatusOK, types.ProxyResponse{Reply: reply})
}
