package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/middleware"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/games"
)

const msgSessionUnavailable = "Chat session unavailable"

// @Summary Get the stored chat
// @Description Returns the messages of the caller's cookie-bound chat session
// @Tags chat
// @Produce json
// @Success 200 {object} models.ChatSessionResponse
// @Failure 500 {object} models.ChatSessionResponse
// @Router /chat/session [get]
func GetChatSession(store ChatHistoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := middleware.ChatSessionID(c, false)
		if err != nil {
			sessionFailure(c, err)
			return
		}
		if sessionID == "" {
			c.JSON(http.StatusOK, models.ChatSessionResponse{Success: true, Messages: []models.ChatMessage{}})
			return
		}

		messages, err := store.GetChatHistory(c.Request.Context(), sessionID)
		if err != nil {
			sessionFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ChatSessionResponse{Success: true, Messages: messages})
	}
}

// @Summary Send a message in the stored chat
// @Description Appends the question to the session, asks the AI with the stored history and appends the answer
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatSessionRequest true "Question"
// @Success 200 {object} models.ChatSessionResponse
// @Failure 400 {object} models.ChatSessionResponse
// @Failure 500 {object} models.ChatSessionResponse
// @Router /chat/session [post]
func PostChatSession(store ChatHistoryStore, responder ChatResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ChatSessionResponse{Error: msgInvalidBody, Messages: []models.ChatMessage{}})
			return
		}
		content := strings.TrimSpace(req.Message)
		if strings.TrimSpace(req.Game) == "" || content == "" {
			c.JSON(http.StatusBadRequest, models.ChatSessionResponse{Error: games.MsgChatFieldsRequired, Messages: []models.ChatMessage{}})
			return
		}

		ctx := c.Request.Context()
		sessionID, err := middleware.ChatSessionID(c, true)
		if err != nil {
			sessionFailure(c, err)
			return
		}
		history, err := store.GetChatHistory(ctx, sessionID)
		if err != nil {
			sessionFailure(c, err)
			return
		}

		userTurn := newChatMessage(models.RoleUser, content)
		if err := store.AppendChatMessage(ctx, sessionID, userTurn); err != nil {
			sessionFailure(c, err)
			return
		}
		messages := append(history, userTurn)

		reply, err := responder.Respond(ctx, models.ChatRequest{
			Game:        req.Game,
			Mode:        req.Mode,
			Message:     content,
			ChatHistory: models.Turns(history),
		})
		if err != nil {
			c.Error(err)
			errorTurn := newChatMessage(models.RoleAssistant, llm_constants.ChatErrorTurn)
			if appendErr := store.AppendChatMessage(ctx, sessionID, errorTurn); appendErr != nil {
				c.Error(appendErr)
			} else {
				messages = append(messages, errorTurn)
			}
			c.JSON(http.StatusInternalServerError, models.ChatSessionResponse{
				Error:    games.PublicMessage(err, games.MsgChatFailed),
				Messages: messages,
			})
			return
		}

		assistantTurn := newChatMessage(models.RoleAssistant, reply)
		if err := store.AppendChatMessage(ctx, sessionID, assistantTurn); err != nil {
			sessionFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ChatSessionResponse{
			Success:  true,
			Response: reply,
			Messages: append(messages, assistantTurn),
		})
	}
}

// @Summary Clear the stored chat
// @Tags chat
// @Produce json
// @Success 200 {object} models.ChatSessionResponse
// @Failure 500 {object} models.ChatSessionResponse
// @Router /chat/session [delete]
func DeleteChatSession(store ChatHistoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := middleware.ChatSessionID(c, false)
		if err != nil {
			sessionFailure(c, err)
			return
		}
		if sessionID != "" {
			if err := store.ClearChatHistory(c.Request.Context(), sessionID); err != nil {
				sessionFailure(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, models.ChatSessionResponse{Success: true, Messages: []models.ChatMessage{}})
	}
}

func newChatMessage(role, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

func sessionFailure(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ChatSessionResponse{Error: msgSessionUnavailable, Messages: []models.ChatMessage{}})
}
