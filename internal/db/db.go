// Package db connects to the redis instance backing the shared content cache.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webbplats/site/internal/config"
)

// ErrNotConfigured is returned when no redis address is set.
var ErrNotConfigured = errors.New("redis address is not configured")

// connectionTimeout bounds the startup ping.
const connectionTimeout = 5 * time.Second

// Initialize opens and verifies a redis connection
func Initialize(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, ErrNotConfigured
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
