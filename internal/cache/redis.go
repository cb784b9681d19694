package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wanderday/go-hangout-itinerary/config"
	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// NewRedisClient connects and pings a Redis server.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisCache is an ItineraryCache backed by Redis, with JSON-serialized values.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

var _ ItineraryCache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*types.ItineraryResponse, bool) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "Redis get failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}

	var itinerary types.ItineraryResponse
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		c.logger.WarnContext(ctx, "Failed to decode cached itinerary", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return &itinerary, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value *types.ItineraryResponse, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode itinerary for cache", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Redis set failed", slog.String("key", key), slog.Any("error", err))
	}
}
