package games

import (
	"context"
	"fmt"
	"strings"

	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/llm"
	"go.uber.org/zap"
)

// Responder answers rules questions about a single game.
type Responder struct {
	caller
}

// NewResponder creates a Responder
func NewResponder(cfg Config) *Responder {
	return &Responder{caller: newCaller(cfg)}
}

// Respond sends the system instruction, the prior turns and the new message
// in one request. The reply is returned as written; an empty reply becomes
// the chat fallback text.
func (r *Responder) Respond(ctx context.Context, req models.ChatRequest) (string, error) {
	game := strings.TrimSpace(req.Game)
	if game == "" || strings.TrimSpace(req.Message) == "" {
		return "", &ValidationError{Message: MsgChatFieldsRequired}
	}

	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		mode = llm_constants.DefaultMode
	}

	messages := make([]llm.Message, 0, len(req.ChatHistory)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: chatSystemPrompt(game, mode)})
	for i, turn := range req.ChatHistory {
		if turn.Role != models.RoleUser && turn.Role != models.RoleAssistant {
			r.log.Debug("dropping chat history entry", zap.Int("index", i), zap.String("role", turn.Role))
			continue
		}
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Message})

	text, err := r.complete(ctx, OperationChat, llm.CompletionRequest{
		Model:       r.models.Chat,
		Messages:    messages,
		Temperature: llm_constants.ChatTemperature,
		MaxTokens:   llm_constants.ChatMaxTokens,
	})
	if err != nil {
		r.log.Warn("chat request failed", zap.String("game", game), zap.Error(err))
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	if text == "" {
		return llm_constants.ChatFallback, nil
	}
	return text, nil
}
