package controllers

import (
	"context"
	"time"

	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/games"
)

const msgInvalidBody = games.MsgInvalidBody

type GameValidator interface {
	Validate(ctx context.Context, gameName string) models.GameInfo
}

type TeamGenerator interface {
	Generate(ctx context.Context, req models.GenerateTeamsRequest) (models.GenerateTeamsResponse, error)
}

type ChatResponder interface {
	Respond(ctx context.Context, req models.ChatRequest) (string, error)
}

// ChatHistoryStore keeps the messages of cookie-bound chat sessions
type ChatHistoryStore interface {
	AppendChatMessage(ctx context.Context, sessionID string, msg models.ChatMessage) error
	GetChatHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	ClearChatHistory(ctx context.Context, sessionID string) error
}

// ShareStore persists shared results behind signed tokens
type ShareStore interface {
	Create(ctx context.Context, data models.ShareData) (string, time.Time, error)
	Resolve(ctx context.Context, token string) (models.ShareData, error)
}
