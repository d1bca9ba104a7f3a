package session

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"strings"
)

const micPermissionHelp = "Microphone access needed: To use voice input, please allow microphone access in your browser settings. On mobile, you might need to refresh the page after granting permission."

// VoiceResult is what the speech input shows inline, plus the reply when a
// final transcript was sent.
type VoiceResult struct {
	Feedback string
	Help     string
	Reply    *Reply
}

// SpeechErrorFeedback maps a recognizer error code to short status text.
// Permission errors also get a help message.
func SpeechErrorFeedback(code string) (feedback, help string) {
	switch code {
	case "no-speech":
		return "No speech detected", ""
	case "audio-capture":
		return "No microphone found", ""
	case "not-allowed":
		return "Mic access denied", micPermissionHelp
	default:
		return "Try again", ""
	}
}

// SubmitTranscript feeds speech input into the chat. Interim transcripts
// only update the status; a final one is sent as if it had been typed.
func (s *Session) SubmitTranscript(ctx context.Context, t types.Transcript) (VoiceResult, error) {
	if t.Error != "" {
		feedback, help := SpeechErrorFeedback(t.Error)
		s.setIdleStatus(StatusReady)
		return VoiceResult{Feedback: feedback, Help: help}, nil
	}

	if !t.Final {
		s.setIdleStatus(StatusListening)
		return VoiceResult{Feedback: StatusListening}, nil
	}

	if strings.TrimSpace(t.Text) == "" {
		s.setIdleStatus(StatusReady)
		return VoiceResult{Feedback: "No speech detected"}, nil
	}

	reply, err := s.Send(ctx, t.Text, false)
	if err != nil {
		return VoiceResult{}, err
	}
	return VoiceResult{Feedback: "Got it!", Reply: &reply}, nil
}
