// Package redis constructs the optional Redis client used by the read cache.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"user_backend/internal/platform/config"
)

// NewRedisClient connects to Redis using the loaded configuration.
// It pings once so a misconfigured address fails at startup, not mid-request.
func NewRedisClient(cfg config.App) (*redis.Client, error) {
	addr := cfg.RedisHost + ":" + cfg.RedisPort

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
