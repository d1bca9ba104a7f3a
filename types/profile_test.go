package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampTone(t *testing.T) {
	assert.Equal(t, 1, ClampTone(-3))
	assert.Equal(t, 4, ClampTone(4))
	assert.Equal(t, 5, ClampTone(12))
}

func TestNormalize(t *testing.T) {
	p := UserProfile{
		Name:          "  Sam ",
		ColorTheme:    "plaid",
		Situation:     "Family",
		Belief:        "astrology",
		ToneLevel:     0,
		ResponseStyle: "poetry",
		FocusArea:     "PRACTICAL",
	}.Normalize()

	assert.Equal(t, "Sam", p.Name)
	assert.Equal(t, DefaultColorTheme, p.ColorTheme)
	assert.Equal(t, SituationFamily, p.Situation)
	assert.Equal(t, Belief(""), p.Belief)
	assert.Equal(t, MinToneLevel, p.ToneLevel)
	assert.Equal(t, StyleConversational, p.ResponseStyle)
	assert.Equal(t, FocusPractical, p.FocusArea)
}

func TestSavedStateWireFormat(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	b, err := json.Marshal(NewSavedState(DefaultProfile(), at))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.EqualValues(t, 1700000000123, raw["timestamp"])
	user, ok := raw["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rose", user["colorTheme"])
	assert.EqualValues(t, 3, user["toneLevel"])
}

func TestToHistoryMessages(t *testing.T) {
	got := ToHistoryMessages([]ConversationTurn{
		{Role: RoleAssistant, Content: "hi"},
		{Role: RoleUser, Content: "hey"},
	})
	assert.Equal(t, []HistoryMessage{{Role: "ai", Content: "hi"}, {Role: "user", Content: "hey"}}, got)
}
