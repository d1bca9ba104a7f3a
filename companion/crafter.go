package companion

import (
	"clementus360/gal-bestfriend/types"
	"strings"
	"sync"
)

// RecentAnalysesLimit bounds the rolling window of analyses a Crafter keeps.
const RecentAnalysesLimit = 5

// Crafter composes local replies for one conversation.
type Crafter struct {
	mu     sync.Mutex
	recent []types.MessageAnalysis
}

func NewCrafter() *Crafter {
	return &Crafter{}
}

// Craft builds a reply for message under the profile's tone, style and focus.
// It never returns an empty string.
func (c *Crafter) Craft(message string, profile types.UserProfile) string {
	tone := ToneFor(profile.ToneLevel)
	analysis := Analyze(message)
	c.remember(analysis)

	ack := BuildAcknowledgment(analysis, tone, message)
	advice := BuildAdvice(analysis, tone, types.ParseFocusArea(string(profile.FocusArea)), profile.Situation, message)

	response := Combine(types.ParseResponseStyle(string(profile.ResponseStyle)), ack, advice)
	if strings.TrimSpace(response) == "" {
		response = ContextualFallback(tone, message)
	}
	return response
}

// Recent returns a copy of the last analyses, oldest first. Nothing reads it
// back yet; it is kept for follow-up aware replies.
func (c *Crafter) Recent() []types.MessageAnalysis {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.MessageAnalysis, len(c.recent))
	copy(out, c.recent)
	return out
}

func (c *Crafter) Reset() {
	c.mu.Lock()
	c.recent = nil
	c.mu.Unlock()
}

func (c *Crafter) remember(a types.MessageAnalysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = append(c.recent, a)
	if len(c.recent) > RecentAnalysesLimit {
		c.recent = c.recent[len(c.recent)-RecentAnalysesLimit:]
	}
}

// Combine joins acknowledgment and advice the way the style asks for.
func Combine(style types.ResponseStyle, ack, advice string) string {
	switch style {
	case types.StyleBrief:
		if ack != "" {
			return ack
		}
		return advice
	case types.StyleStructured:
		if ack != "" && advice != "" {
			return ack + "\n\n" + advice
		}
	default:
		if ack != "" && advice != "" {
			return ack + " " + advice
		}
	}
	if ack != "" {
		return ack
	}
	return advice
}

var (
	questionFallback = tonal{
		"That's a thoughtful question. Tell me more about what's behind it — what's making you ask?",
		"Good question. Give me more context — what's the situation?",
		"I want to give you a real answer. Fill me in more — what's going on?",
	}
	statementFallback = tonal{
		"I hear you. There's a lot there. What part feels most important to talk through?",
		"Got it. What's the part of this that's weighing on you most?",
		"Okay. What do you need — to vent more, or to figure out what to do?",
	}
)

// ContextualFallback is used when composition produced nothing.
func ContextualFallback(tone Tone, message string) string {
	if strings.Contains(message, "?") {
		return questionFallback.For(tone)
	}
	return statementFallback.For(tone)
}
