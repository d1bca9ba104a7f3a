package handlers

import (
	"clementus360/gal-bestfriend/types"
	"encoding/json"
	"net/http"
)

// VoiceHandler takes speech recognizer output for a session.
func (s *Server) VoiceHandler(w http.ResponseWriter, r *http.Request) {
	var req types.Transcript
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := s.Sessions.Get(req.SessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	res, err := sess.SubmitTranscript(r.Context(), req)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	resp := types.VoiceResponse{
		Success:  true,
		Feedback: res.Feedback,
		Help:     res.Help,
	}
	if res.Reply != nil {
		reply := toChatResponse(sess.ID, req.Text, *res.Reply)
		resp.Reply = &reply
	}
	writeJSON(w, http.StatusOK, resp)
}
