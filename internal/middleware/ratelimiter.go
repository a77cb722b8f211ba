package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redisClient *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redisClient: client}
}

// Limit ограничивает количество запросов с одного IP в окне window.
// Если redis недоступен, пропускаем запрос — лимитер не должен
// превращаться в точку отказа.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())

		count, err := rl.redisClient.Incr(c, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(c, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(c, key).Result()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"error":       "Too many requests",
				"retry_after": fmt.Sprintf("%.0f seconds", ttl.Seconds()),
			})
			return
		}
		c.Next()
	}
}
