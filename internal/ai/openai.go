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

// CloudClient talks to Gemini through its OpenAI-compatible chat completions
// endpoint. Any backend speaking the same protocol works by swapping baseURL.
type CloudClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewCloudClient creates a cloud narrator client.
func NewCloudClient(baseURL, apiKey, model string, timeout time.Duration) *CloudClient {
	return &CloudClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CompletionRequest is the request to the chat completions API
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// CompletionResponse is the response from the chat completions API
type CompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int     `json:"index"`
		Message Message `json:"message"`
		Reason  string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *CloudClient) Name() string { return "gemini" }

// Generate calls the chat completions endpoint with the full message list.
func (c *CloudClient) Generate(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", &ProviderError{Provider: c.Name(), Class: ClassDenied, Err: fmt.Errorf("api key not configured")}
	}

	req := &CompletionRequest{
		Model:    c.model,
		Messages: messages,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/chat/completions", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classifyTransport(c.Name(), err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &ProviderError{Provider: c.Name(), Class: ClassDenied, Err: fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))}
	case resp.StatusCode == http.StatusTooManyRequests:
		// Rate limiting is treated as the endpoint being unavailable so the
		// failover retry can pick up the other provider.
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnreachable, Err: fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))}
	case resp.StatusCode != http.StatusOK:
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))}
	}

	var completionResp CompletionResponse
	if err := json.Unmarshal(respBody, &completionResp); err != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if completionResp.Error != nil {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("API error: %s (%s)", completionResp.Error.Message, completionResp.Error.Type)}
	}

	if len(completionResp.Choices) == 0 {
		return "", &ProviderError{Provider: c.Name(), Class: ClassUnclassified, Err: fmt.Errorf("no choices in response")}
	}

	return completionResp.Choices[0].Message.Content, nil
}
