// Package llm talks to the external language model that validates games,
// generates teams and answers chat questions.
//
// Every backend implements Collaborator. A call is bounded by the client's
// timeout and by the caller's context, and transient failures are retried
// with exponential backoff before the error is surfaced.
package llm

import "context"

// Message roles understood by every backend
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged message of a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a provider-agnostic completion request.
type CompletionRequest struct {
	// Model is the backend-specific model identifier
	Model string

	// Messages is the conversation, system message first
	Messages []Message

	// Temperature controls randomness
	Temperature float64

	// MaxTokens caps the completion length
	MaxTokens int
}

// Collaborator returns the text of a single completion.
//
// An empty string with a nil error means the provider answered without
// content; callers decide whether that is a failure.
type Collaborator interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
