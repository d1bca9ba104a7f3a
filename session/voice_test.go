package session

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeechErrorFeedback(t *testing.T) {
	tests := []struct {
		code     string
		feedback string
		help     bool
	}{
		{"no-speech", "No speech detected", false},
		{"audio-capture", "No microphone found", false},
		{"not-allowed", "Mic access denied", true},
		{"network", "Try again", false},
	}
	for _, tt := range tests {
		feedback, help := SpeechErrorFeedback(tt.code)
		assert.Equal(t, tt.feedback, feedback, tt.code)
		assert.Equal(t, tt.help, help != "", tt.code)
	}
}

func TestSubmitTranscript(t *testing.T) {
	s := newTestSession(testProfile(), Options{})
	ctx := context.Background()

	res, err := s.SubmitTranscript(ctx, types.Transcript{Text: "I think", Final: false})
	require.NoError(t, err)
	assert.Equal(t, StatusListening, res.Feedback)
	assert.Nil(t, res.Reply)
	assert.Equal(t, StatusListening, s.Status())
	assert.Len(t, s.History(), 1, "interim transcripts are not sent")

	res, err = s.SubmitTranscript(ctx, types.Transcript{Error: "not-allowed"})
	require.NoError(t, err)
	assert.Equal(t, "Mic access denied", res.Feedback)
	assert.NotEmpty(t, res.Help)
	assert.Equal(t, StatusReady, s.Status())

	res, err = s.SubmitTranscript(ctx, types.Transcript{Text: "  ", Final: true})
	require.NoError(t, err)
	assert.Equal(t, "No speech detected", res.Feedback)

	res, err = s.SubmitTranscript(ctx, types.Transcript{Text: "I think she hates me", Final: true})
	require.NoError(t, err)
	assert.Equal(t, "Got it!", res.Feedback)
	require.NotNil(t, res.Reply)
	assert.NotEmpty(t, res.Reply.Text)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, "I think she hates me", history[1].Content)
}
