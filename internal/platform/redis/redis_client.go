package redis

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance configured via REDIS_HOST,
// REDIS_PORT and REDIS_PASSWORD and verifies the connection with a ping.
// The port defaults to 6379 when unset.
func NewRedisClient() (*redis.Client, error) {
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	addr := os.Getenv("REDIS_HOST") + ":" + port
	password := os.Getenv("REDIS_PASSWORD")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
