package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-1.5-flash"
)

// GeminiProvider calls the generateContent REST endpoint. The system prompt
// travels as systemInstruction; assistant turns use the "model" role.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiProvider(apiKey, model, baseURL string) *GeminiProvider {
	if model == "" {
		model = defaultGeminiModel
	}
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// Add timeout to prevent hanging
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete implements Provider.
func (p *GeminiProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	var (
		system   []map[string]string
		contents []map[string]interface{}
	)
	for _, m := range messages {
		part := []map[string]string{{"text": m.Content}}
		switch m.Role {
		case "system":
			system = append(system, part...)
		case "assistant":
			contents = append(contents, map[string]interface{}{"role": "model", "parts": part})
		default:
			contents = append(contents, map[string]interface{}{"role": "user", "parts": part})
		}
	}

	body := map[string]interface{}{
		"contents": contents,
		"generationConfig": map[string]interface{}{
			"temperature":     0.8,
			"maxOutputTokens": 500,
		},
	}
	if len(system) > 0 {
		body["systemInstruction"] = map[string]interface{}{"parts": system}
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return extractTextFromResponse(res)
}

func extractTextFromResponse(res map[string]interface{}) (string, error) {
	candidates, ok := res["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid candidate format")
	}

	content, ok := candidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no content in candidate")
	}

	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("no parts in content")
	}

	var text strings.Builder
	for _, p := range parts {
		part, ok := p.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("invalid part format")
		}
		if s, ok := part["text"].(string); ok {
			text.WriteString(s)
		}
	}

	return text.String(), nil
}
