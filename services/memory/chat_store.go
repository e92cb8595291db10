// Package memory keeps chat session histories in process memory. It is used
// when no Redis server is configured, so history does not survive restarts
// and is not shared between replicas.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/yashwanthkasi9182/PlayMate/models"
)

type session struct {
	messages  []models.ChatMessage
	expiresAt time.Time
}

// ChatStore is a TTL-bounded map of session id to chat history.
type ChatStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

// NewChatStore creates an empty store whose sessions expire ttl after their
// last write.
func NewChatStore(ttl time.Duration) *ChatStore {
	return &ChatStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

func (s *ChatStore) AppendChatMessage(_ context.Context, sessionID string, msg models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[sessionID]
	if !ok || now.After(sess.expiresAt) {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	sess.messages = append(sess.messages, msg)
	sess.expiresAt = now.Add(s.ttl)
	return nil
}

// GetChatHistory returns a copy of the session's messages
func (s *ChatStore) GetChatHistory(_ context.Context, sessionID string) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || s.now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return []models.ChatMessage{}, nil
	}
	out := make([]models.ChatMessage, len(sess.messages))
	copy(out, sess.messages)
	return out, nil
}

func (s *ChatStore) ClearChatHistory(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Prune drops expired sessions and returns how many were removed
func (s *ChatStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
