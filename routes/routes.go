package routes

import (
	"clementus360/gal-bestfriend/handlers"
	"net/http"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, s *handlers.Server) {
	RegisterProxyRoutes(mux, s)
	RegisterSessionRoutes(mux, s)
	RegisterChatRoutes(mux, s)
	RegisterCatalogRoutes(mux, s)
}

// RegisterProxyRoutes registers the stateless LLM proxy
func RegisterProxyRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("POST /api/chat", s.ProxyChatHandler)
}

// RegisterSessionRoutes registers onboarding and settings routes
func RegisterSessionRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("POST /sessions", s.CreateSessionHandler)
	mux.HandleFunc("DELETE /sessions", s.DeleteSessionHandler)
	mux.HandleFunc("PATCH /settings", s.UpdateSettingsHandler)
}

// RegisterCatalogRoutes registers the read-only onboarding helpers
func RegisterCatalogRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("GET /tone/preview", s.TonePreviewHandler)
	mux.HandleFunc("GET /themes", s.ThemesHandler)
}
