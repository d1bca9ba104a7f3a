package handlers

import (
	"clementus360/gal-bestfriend/session"
)

// Server carries what the handlers share. Upstream answers /api/chat and may
// be nil when no provider is configured.
type Server struct {
	Sessions *session.Manager
	Upstream session.ExternalHandler
}

func NewServer(sessions *session.Manager, upstream session.ExternalHandler) *Server {
	return &Server{Sessions: sessions, Upstream: upstream}
}
