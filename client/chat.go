package client

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/models"
)

// Chat is an append-only conversation about one game. Messages are never
// edited; a failed turn appends an apology instead of the answer.
type Chat struct {
	client *Client
	game   string
	mode   string

	mu       sync.Mutex
	messages []models.ChatMessage
	err      error
}

func NewChat(c *Client, game, mode string) *Chat {
	return &Chat{client: c, game: game, mode: mode}
}

// SendMessage appends the user turn, asks the server with the earlier turns
// as history and appends the answer. Blank input is ignored.
func (c *Chat) SendMessage(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	c.mu.Lock()
	history := models.Turns(c.messages)
	c.messages = append(c.messages, newMessage(models.RoleUser, content))
	c.err = nil
	c.mu.Unlock()

	var resp models.ChatResponse
	err := c.client.postJSON(ctx, "/chat", models.ChatRequest{
		Game:        c.game,
		Mode:        c.mode,
		Message:     content,
		ChatHistory: history,
	}, &resp)
	if err == nil && !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Failed to get response"
		}
		err = errors.New(msg)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = err
		c.messages = append(c.messages, newMessage(models.RoleAssistant, llm_constants.ChatErrorTurn))
		return err
	}

	answer := resp.Response
	if answer == "" {
		answer = llm_constants.ChatFallback
	}
	c.messages = append(c.messages, newMessage(models.RoleAssistant, answer))
	return nil
}

// Messages returns a copy of the conversation
func (c *Chat) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *Chat) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Clear empties the conversation and forgets the error
func (c *Chat) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.err = nil
}

func newMessage(role, content string) models.ChatMessage {
	return models.ChatMessage{ID: uuid.NewString(), Role: role, Content: content, Timestamp: time.Now()}
}
