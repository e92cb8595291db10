package config

import (
	"context"
	"time"

	"github.com/yashwanthkasi9182/PlayMate/services/redis"
)

// ConnectRedis connects to the Redis server at url
func ConnectRedis(ctx context.Context, url string) (*redis.RedisClient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return redis.InitRedis(ctx, url, 0)
}
