package llm

import (
	"clementus360/gal-bestfriend/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(types.ChatContext{
		ToneLevel:     5,
		ResponseStyle: types.StyleBrief,
		FocusArea:     types.FocusPractical,
		Situation:     types.SituationRomantic,
		UserName:      "Sam",
	})

	assert.Contains(t, prompt, "- Name: Sam")
	assert.Contains(t, prompt, "navigating a romantic relationship")
	assert.Contains(t, prompt, "YOUR TONE (Level 5/5):\nreal talk mode")
	assert.Contains(t, prompt, "actionable advice")
	assert.Contains(t, prompt, "Keep responses concise")
}

func TestBuildSystemPrompt_Defaults(t *testing.T) {
	prompt := BuildSystemPrompt(types.ChatContext{})

	assert.Contains(t, prompt, "- Name: Friend")
	assert.Contains(t, prompt, "general relationship matter")
	assert.Contains(t, prompt, toneDescriptions[3])
	assert.Contains(t, prompt, focusGuidance[types.FocusEmotional])
	assert.Contains(t, prompt, styleGuidance[types.StyleConversational])
	assert.True(t, strings.HasPrefix(prompt, "You are Gal Bestfriend"))
}
