package llm

import (
	"clementus360/gal-bestfriend/types"
	"context"
	"strings"
)

// FallbackReply answers when a provider returns nothing.
const FallbackReply = "I'm here for you. Tell me more."

// Handler writes replies with an in-process provider.
type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// Reply prompts the provider with the conversation context. An empty
// completion is returned as is so the caller can decide what to do with it.
func (h *Handler) Reply(ctx context.Context, message string, chatCtx types.ChatContext) (string, error) {
	text, err := h.provider.Complete(ctx, BuildMessages(message, chatCtx))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
