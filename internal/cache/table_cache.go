// Package cache holds the pathway-table cache implementations: a
// redis-backed one for deployments and an in-memory TTL one for tests and
// redis-less setups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"riskradar/internal/model"
)

// TableCache stores parsed pathway tables with a freshness window.
// Get returns (nil, nil) on a miss or an expired entry.
type TableCache interface {
	Get(ctx context.Context, pathway model.Pathway) (*model.PathwayTable, error)
	Set(ctx context.Context, table *model.PathwayTable) error
	Clear(ctx context.Context, pathway model.Pathway) error
	ClearAll(ctx context.Context) error
}

type tableCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTableCache creates a redis-backed table cache.
func NewTableCache(client *redis.Client, ttl time.Duration) TableCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &tableCache{client: client, ttl: ttl}
}

func tableKey(pathway model.Pathway) string {
	return "table:" + string(pathway)
}

func (c *tableCache) Get(ctx context.Context, pathway model.Pathway) (*model.PathwayTable, error) {
	data, err := c.client.Get(ctx, tableKey(pathway)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var table model.PathwayTable
	if err := json.Unmarshal([]byte(data), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *tableCache) Set(ctx context.Context, table *model.PathwayTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tableKey(table.Pathway), data, c.ttl).Err()
}

func (c *tableCache) Clear(ctx context.Context, pathway model.Pathway) error {
	return c.client.Del(ctx, tableKey(pathway)).Err()
}

func (c *tableCache) ClearAll(ctx context.Context) error {
	keys := make([]string, 0, len(model.Pathways()))
	for _, p := range model.Pathways() {
		keys = append(keys, tableKey(p))
	}
	return c.client.Del(ctx, keys...).Err()
}
