package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mmgp/internal/model"
)

// HistoryCache caches per-email history lists. A new submission invalidates the entry.
type HistoryCache interface {
	Get(ctx context.Context, email string) ([]model.ResponseSummary, error)
	Set(ctx context.Context, email string, list []model.ResponseSummary) error
	Invalidate(ctx context.Context, email string) error
}

type historyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHistoryCache creates a history cache
func NewHistoryCache(client *redis.Client, ttl time.Duration) HistoryCache {
	return &historyCache{client: client, ttl: ttl}
}

func (c *historyCache) key(email string) string {
	return fmt.Sprintf("history:%s", email)
}

// Get returns nil, nil on a miss.
func (c *historyCache) Get(ctx context.Context, email string) ([]model.ResponseSummary, error) {
	data, err := c.client.Get(ctx, c.key(email)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list := []model.ResponseSummary{}
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *historyCache) Set(ctx context.Context, email string, list []model.ResponseSummary) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(email), data, c.ttl).Err()
}

func (c *historyCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}
