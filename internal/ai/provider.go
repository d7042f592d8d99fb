package ai

import "context"

// Chat roles understood by both narrator backends.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is one generative narrator backend. Generate sends the ordered
// message list and returns the raw text of the model's reply; transport and
// backend failures come back as *ProviderError.
type Provider interface {
	Name() string
	Generate(ctx context.Context, messages []Message) (string, error)
}
