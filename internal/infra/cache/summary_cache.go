package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/splitteam/expense-backend/internal/settlement"
)

// RedisSummaryCache keeps computed team summaries in Redis between expense
// mutations. Cache failures are logged and treated as misses; the summary
// path never depends on Redis being up.
type RedisSummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{
		Client: client,
		TTL:    ttl,
	}
}

func summaryKey(teamId string) string {
	return "summary:" + teamId
}

func (c *RedisSummaryCache) Get(teamId string) ([]settlement.Balance, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := c.Client.Get(ctx, summaryKey(teamId)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("summary cache read failed", "team_id", teamId, "error", err)
		}
		return nil, false
	}

	var balances []settlement.Balance
	if err := json.Unmarshal([]byte(value), &balances); err != nil {
		slog.Warn("summary cache entry corrupt, dropping", "team_id", teamId, "error", err)
		c.Invalidate(teamId)
		return nil, false
	}

	return balances, true
}

func (c *RedisSummaryCache) Set(teamId string, balances []settlement.Balance) {
	payload, err := json.Marshal(balances)
	if err != nil {
		slog.Warn("summary cache marshal failed", "team_id", teamId, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := c.Client.Set(ctx, summaryKey(teamId), payload, c.TTL).Err(); err != nil {
		slog.Warn("summary cache write failed", "team_id", teamId, "error", err)
	}
}

func (c *RedisSummaryCache) Invalidate(teamId string) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := c.Client.Del(ctx, summaryKey(teamId)).Err(); err != nil {
		slog.Warn("summary cache invalidation failed", "team_id", teamId, "error", err)
	}
}
