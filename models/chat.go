package models

import "time"

// Chat roles accepted from callers
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is an entry of a chat session
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTurn is a prior turn sent along with a chat request
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload of /chat
type ChatRequest struct {
	Game        string     `json:"game"`
	Mode        string     `json:"mode,omitempty"`
	Message     string     `json:"message"`
	ChatHistory []ChatTurn `json:"chatHistory,omitempty"`
}

// ChatResponse is the reply of /chat
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ChatSessionRequest sends a message in the caller's stored session
type ChatSessionRequest struct {
	Game    string `json:"game"`
	Mode    string `json:"mode,omitempty"`
	Message string `json:"message"`
}

// ChatSessionResponse returns the answer and the updated conversation
type ChatSessionResponse struct {
	Success  bool          `json:"success"`
	Response string        `json:"response,omitempty"`
	Error    string        `json:"error,omitempty"`
	Messages []ChatMessage `json:"messages"`
}

// Turns strips ids and timestamps to build a request history
func Turns(messages []ChatMessage) []ChatTurn {
	turns := make([]ChatTurn, len(messages))
	for i, m := range messages {
		turns[i] = ChatTurn{Role: m.Role, Content: m.Content}
	}
	return turns
}
