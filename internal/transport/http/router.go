package handlers

import (
	"net/http"
	"time"

	"gamification-service/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	notificationHandler *NotificationHandler,
	streakHandler *StreakHandler,
	badgeHandler *BadgeHandler,
	xpHandler *XPHandler,
	leaderboardHandler *LeaderboardHandler,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(cors.Default())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	api := r.Group("/api")
	{
		notifications := api.Group("/notifications")
		{
			notifications.GET("/:userId", notificationHandler.List)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("", notificationHandler.Create)
		}

		streak := api.Group("/streak")
		{
			streak.POST("/:userId", limiter.Limit("streak", 30, time.Minute), streakHandler.Update)
			streak.GET("/:userId/calendar", streakHandler.Calendar)
		}

		badges := api.Group("/badges")
		{
			badges.GET("/:userId", badgeHandler.List)
			badges.POST("/:userId/check", limiter.Limit("badge_check", 60, time.Minute), badgeHandler.Check)
		}

		api.POST("/xp/calculate", xpHandler.Calculate)

		api.GET("/leaderboard", leaderboardHandler.Top)
		api.POST("/leaderboard/update", leaderboardHandler.Update)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gamification-service"})
		})
	}

	return r
}
