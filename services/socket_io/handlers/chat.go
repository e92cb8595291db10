package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/games"
	"github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

// Event names of the realtime chat
const (
	EventChatMessage  = "chat_message"
	EventChatResponse = "chat_response"
)

// ChatResponder answers a chat request
type ChatResponder interface {
	Respond(ctx context.Context, req models.ChatRequest) (string, error)
}

var errMissingPayload = errors.New("missing chat payload")

// DecodeChatPayload converts the first event argument into a ChatRequest.
// Clients send either an object or its JSON text.
func DecodeChatPayload(args []any) (models.ChatRequest, error) {
	var req models.ChatRequest
	if len(args) == 0 || args[0] == nil {
		return req, errMissingPayload
	}

	var raw []byte
	switch v := args[0].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return req, fmt.Errorf("failed to encode chat payload: %w", err)
		}
		raw = encoded
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("failed to decode chat payload: %w", err)
	}
	return req, nil
}

// AnswerChat runs one chat turn and builds the reply envelope
func AnswerChat(ctx context.Context, responder ChatResponder, req models.ChatRequest) models.ChatResponse {
	reply, err := responder.Respond(ctx, req)
	if err != nil {
		return models.ChatResponse{Success: false, Error: games.PublicMessage(err, games.MsgChatFailed)}
	}
	return models.ChatResponse{Success: true, Response: reply}
}

// ReplyToChat decodes an event payload and answers it. Undecodable payloads
// get the same message as a malformed HTTP body.
func ReplyToChat(ctx context.Context, responder ChatResponder, args []any, log *zap.Logger) models.ChatResponse {
	req, err := DecodeChatPayload(args)
	if err != nil {
		log.Debug("invalid chat payload", zap.Error(err))
		return models.ChatResponse{Success: false, Error: games.MsgInvalidBody}
	}

	resp := AnswerChat(ctx, responder, req)
	if !resp.Success {
		log.Info("chat message failed", zap.String("game", req.Game), zap.String("error", resp.Error))
	}
	return resp
}

// HandleChatMessage answers "chat_message" events with a "chat_response"
// event on the same socket. ctx should be cancelled when the socket
// disconnects so pending upstream calls stop.
func HandleChatMessage(ctx context.Context, client *socket.Socket, responder ChatResponder, log *zap.Logger) func(args ...any) {
	log = log.With(zap.String("socket", string(client.Id())))
	return func(args ...any) {
		client.Emit(EventChatResponse, ReplyToChat(ctx, responder, args, log))
	}
}
