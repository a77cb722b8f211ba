package handlers

import (
	"net/http"
	"strconv"

	"gamification-service/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboard *usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(leaderboard *usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := h.leaderboard.GetTopUsers(c, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": rows})
}

func (h *LeaderboardHandler) Update(c *gin.Context) {
	if err := h.leaderboard.UpdateLeaderboard(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Leaderboard updated"})
}
