package domain

import "context"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// ChatMessage represents a message in a chat request to the LLM API.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatRequest represents a request to the LLM API.
type ChatRequest struct {
	Model    string
	Messages []ChatMessage
	// Optional parameters
	Temperature *float64
	MaxTokens   *int
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatResponse represents the response from a chat request to the LLM API.
// Content is the first completion's text, treated as an opaque string.
type ChatResponse struct {
	Content string
	Usage   LLMUsage
}

// LLMClient defines the interface for interacting with an LLM API.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// CredentialChecker reports whether a usable API credential is configured.
// It must be consulted before any network attempt so every pipeline entry
// point degrades to MissingCredentialErr instead of attempting a live call.
type CredentialChecker interface {
	IsConfigured() bool
}
