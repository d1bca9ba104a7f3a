package llm

import (
	"bytes"
	"clementus360/gal-bestfriend/types"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ProxyClient sends replies through a remote /api/chat endpoint so the
// provider key never leaves that server.
type ProxyClient struct {
	url    string
	client *http.Client
}

func NewProxyClient(url string) *ProxyClient {
	return &ProxyClient{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Reply implements the external handler contract.
func (p *ProxyClient) Reply(ctx context.Context, message string, chatCtx types.ChatContext) (string, error) {
	jsonData, err := json.Marshal(types.ProxyRequest{Message: message, Context: chatCtx})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var out types.ProxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("proxy returned status %d: %s", resp.StatusCode, out.Error)
	}
	return out.Reply, nil
}
