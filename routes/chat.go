package routes

import (
	"clementus360/gal-bestfriend/handlers"
	"net/http"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("POST /chat", s.ChatHandler)
	mux.HandleFunc("GET /chat", s.GetMessagesHandler)
	mux.HandleFunc("POST /chat/accept", s.AcceptHandler)
	mux.HandleFunc("POST /chat/regenerate", s.RegenerateHandler)
	mux.HandleFunc("POST /chat/voice", s.VoiceHandler)
}
