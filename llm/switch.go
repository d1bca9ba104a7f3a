package llm

import (
	"context"
	"fmt"
)

type Model string

const (
	OpenAI Model = "openai"
	Gemini Model = "gemini"
)

// Provider completes a chat and returns the assistant's text.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	Model     Model
	APIKey    string
	ModelName string
	// BaseURL overrides the provider endpoint; used by tests.
	BaseURL string
}

// NewProvider creates the provider for cfg.Model.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key not set", cfg.Model)
	}

	switch cfg.Model {
	case OpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.ModelName, cfg.BaseURL), nil
	case Gemini:
		return NewGeminiProvider(cfg.APIKey, cfg.ModelName, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported model: %s (supported: %s, %s)", cfg.Model, OpenAI, Gemini)
	}
}
