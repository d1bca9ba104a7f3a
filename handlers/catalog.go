package handlers

import (
	"clementus360/gal-bestfriend/companion"
	"clementus360/gal-bestfriend/types"
	"net/http"
	"strconv"
)

// TonePreviewHandler shows how the companion sounds at a tone level.
func (s *Server) TonePreviewHandler(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.URL.Query().Get("level"))
	if err != nil {
		writeError(w, "Invalid tone level", http.StatusBadRequest)
		return
	}
	level = types.ClampTone(level)

	writeJSON(w, http.StatusOK, types.TonePreviewResponse{
		Success: true,
		Level:   level,
		Preview: companion.TonePreview(level),
	})
}

func (s *Server) ThemesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.GetThemesResponse{
		Success: true,
		Themes:  types.ColorThemes,
	})
}
