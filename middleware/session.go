package middleware

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const chatSessionKey = "chat_session_id"

// ChatSessionID returns the chat session id stored in the cookie, creating
// and saving a new one when create is set. It returns "" when there is no
// session and create is false.
func ChatSessionID(c *gin.Context, create bool) (string, error) {
	session := sessions.Default(c)
	if id, ok := session.Get(chatSessionKey).(string); ok && id != "" {
		return id, nil
	}
	if !create {
		return "", nil
	}

	id := uuid.NewString()
	session.Set(chatSessionKey, id)
	if err := session.Save(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return id, nil
}
