package llm

import (
	"clementus360/gal-bestfriend/types"
)

const (
	// MaxHistoryMessages is how many prior turns go into a prompt.
	MaxHistoryMessages = 10
	// MaxPromptTokens bounds the whole conversation sent to a provider.
	MaxPromptTokens = 6000
)

// Message is one provider-neutral chat message. Role is "system", "user" or
// "assistant".
type Message struct {
	Role    string
	Content string
}

// Token estimation and context trimming
func EstimateTokens(text string) int {
	// Rough estimation: ~4 characters per token
	return len(text) / 4
}

// BuildMessages lays out the system prompt, the recent history and the new
// message. The oldest history is dropped first when over the token budget.
func BuildMessages(message string, chatCtx types.ChatContext) []Message {
	system := Message{Role: "system", Content: BuildSystemPrompt(chatCtx)}
	user := Message{Role: "user", Content: message}

	history := TrimHistory(chatCtx.History, MaxHistoryMessages)
	for len(history) > 0 && estimateMessages(system, user, history) > MaxPromptTokens {
		history = history[1:]
	}

	out := make([]Message, 0, len(history)+2)
	out = append(out, system)
	for _, h := range history {
		role := "user"
		if h.Role == "ai" || h.Role == string(types.RoleAssistant) {
			role = "assistant"
		}
		out = append(out, Message{Role: role, Content: h.Content})
	}
	return append(out, user)
}

// TrimHistory keeps the last n entries in order.
func TrimHistory(history []types.HistoryMessage, n int) []types.HistoryMessage {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]types.HistoryMessage, len(history))
	copy(out, history)
	return out
}

func estimateMessages(system, user Message, history []types.HistoryMessage) int {
	total := EstimateTokens(system.Content) + EstimateTokens(user.Content)
	for _, h := range history {
		total += EstimateTokens(h.Content)
	}
	return total
}
