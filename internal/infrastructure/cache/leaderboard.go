package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamification-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	topKeyPattern = "leaderboard:top:*"
	topTTL        = time.Minute
)

// LeaderboardCache хранит готовые страницы топа. Это кеш чтения,
// источником истины остается таблица leaderboard в Postgres.
type LeaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

func topKey(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}

func (c *LeaderboardCache) GetTop(ctx context.Context, limit int) ([]domain.LeaderboardRow, bool) {
	val, err := c.client.Get(ctx, topKey(limit)).Result()
	if err != nil {
		return nil, false
	}
	var rows []domain.LeaderboardRow
	if json.Unmarshal([]byte(val), &rows) != nil {
		return nil, false
	}
	return rows, true
}

func (c *LeaderboardCache) SetTop(ctx context.Context, limit int, rows []domain.LeaderboardRow) {
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	c.client.Set(ctx, topKey(limit), data, topTTL)
}

// Invalidate сбрасывает все закешированные страницы после пересчета рейтинга.
func (c *LeaderboardCache) Invalidate(ctx context.Context) {
	keys, err := c.client.Keys(ctx, topKeyPattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
