package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaClient talks to a local Ollama instance over its chat API.
type OllamaClient struct {
	baseURL     string
	model       string
	httpClient  *http.Client
	probeClient *http.Client
}

// NewOllamaClient creates a local narrator client.
func NewOllamaClient(baseURL, model string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		probeClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Format   string    `json:"format,omitempty"`
}

type ollamaChatResponse struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Error   string  `json:"error,omitempty"`
}

func (c *OllamaClient) Name() string { return "ollama" }

// Generate sends the message list to Ollama with JSON output forced.
func (c *OllamaClient) Generate(ctx context.Context, messages []Message) (string, error) {
	req := ollamaChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
		Format:   "json",
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/chat", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))}
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if chatResp.Error != "" {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("ollama error: %s", chatResp.Error)}
	}

	return chatResp.Message.Content, nil
}

// Ping checks whether the Ollama base endpoint is reachable. It is a cheap
// liveness probe only; it does not verify the configured model exists.
func (c *OllamaClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/", nil)
	if err != nil {
		return err
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ollama probe returned status %d", resp.StatusCode)
	}
	return nil
}
