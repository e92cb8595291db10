package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yashwanthkasi9182/PlayMate/models"
	redis_utils "github.com/yashwanthkasi9182/PlayMate/services/redis/utils"
)

// DefaultTTL applies to every key written by the client
const DefaultTTL = 24 * time.Hour

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client instance. addr is either a
// redis:// URL or a plain host:port.
func NewRedisClient(addr string, db int) (*RedisClient, error) {
	var opt *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: addr, DB: db}
	}
	return &RedisClient{
		client: redis.NewClient(opt),
		ttl:    DefaultTTL,
	}, nil
}

// GetGameInfo returns a cached validation result
// Key format: "game:{digest}:info"
// Returns: nil, nil on a miss
func (rc *RedisClient) GetGameInfo(ctx context.Context, gameName string) (*models.GameInfo, error) {
	key := redis_utils.FormatGameInfoKey(gameName)
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting game info: %w", err)
	}

	var info models.GameInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("error unmarshaling game info: %w", err)
	}
	return &info, nil
}

// SetGameInfo caches a validation result
// Key format: "game:{digest}:info"
// TTL: 24 hours
func (rc *RedisClient) SetGameInfo(ctx context.Context, gameName string, info models.GameInfo) error {
	key := redis_utils.FormatGameInfoKey(gameName)
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("error marshaling game info: %w", err)
	}
	return rc.client.Set(ctx, key, data, rc.ttl).Err()
}

// AppendChatMessage adds a message at the end of a session's history and
// refreshes the history TTL.
// Key format: "chat:{session}:history"
func (rc *RedisClient) AppendChatMessage(ctx context.Context, sessionID string, msg models.ChatMessage) error {
	key := redis_utils.FormatChatHistoryKey(sessionID)
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling chat message: %w", err)
	}

	pipe := rc.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, rc.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error appending chat message: %w", err)
	}
	return nil
}

// GetChatHistory returns the messages of a session, oldest first
// Key format: "chat:{session}:history"
func (rc *RedisClient) GetChatHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := redis_utils.FormatChatHistoryKey(sessionID)
	entries, err := rc.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting chat history: %w", err)
	}

	messages := make([]models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("error unmarshaling chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// ClearChatHistory deletes a session's history
func (rc *RedisClient) ClearChatHistory(ctx context.Context, sessionID string) error {
	return rc.CleanupKeys(ctx, []string{redis_utils.FormatChatHistoryKey(sessionID)})
}
