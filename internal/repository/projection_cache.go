package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/escalation-service/internal/workflow"
)

// ProjectionCache caches projected workflow views for dashboard reads.
// A miss returns (nil, nil); callers fall back to the pure projector.
type ProjectionCache interface {
	Get(ctx context.Context, ticketID string) (*workflow.ProjectedView, error)
	Set(ctx context.Context, ticketID string, view *workflow.ProjectedView) error
	Invalidate(ctx context.Context, ticketID string) error
}

type redisProjectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProjectionCache builds a redis-backed projection cache.
func NewRedisProjectionCache(client *redis.Client, ttl time.Duration) ProjectionCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisProjectionCache{client: client, ttl: ttl}
}

func cacheKey(ticketID string) string {
	return "workflow:projection:" + ticketID
}

func (c *redisProjectionCache) Get(ctx context.Context, ticketID string) (*workflow.ProjectedView, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, cacheKey(ticketID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view workflow.ProjectedView
	if err := json.Unmarshal(raw, &view); err != nil {
		// Treat a corrupt entry as a miss; it will be rewritten.
		return nil, nil
	}
	return &view, nil
}

func (c *redisProjectionCache) Set(ctx context.Context, ticketID string, view *workflow.ProjectedView) error {
	if c.client == nil || view == nil {
		return nil
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(ticketID), raw, c.ttl).Err()
}

func (c *redisProjectionCache) Invalidate(ctx context.Context, ticketID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, cacheKey(ticketID)).Err()
}
