package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamification-service/internal/application/usecase"
	"gamification-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StreakHandler struct {
	streaks *usecase.StreakUsecase
}

func NewStreakHandler(streaks *usecase.StreakUsecase) *StreakHandler {
	return &StreakHandler{streaks: streaks}
}

func (h *StreakHandler) Update(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
		return
	}

	res, err := h.streaks.UpdateDailyStreak(c, userID, time.Time{})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if res.AlreadyCompleted {
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"already_completed": true,
			"message":           "Already completed today",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"updated":          true,
		"streak_continued": res.StreakContinued,
		"streak_count":     res.StreakCount,
		"longest_streak":   res.LongestStreak,
		"message":          "Streak updated",
	})
}

type calendarDay struct {
	Date               string `json:"date"`
	CompletedChallenge bool   `json:"completed_challenge"`
}

func (h *StreakHandler) Calendar(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
		return
	}
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	entries, err := h.streaks.GetStreakCalendar(c, userID, time.Month(month), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	calendar := make([]calendarDay, 0, len(entries))
	for _, e := range entries {
		calendar = append(calendar, calendarDay{
			Date:               e.Date.Format("2006-01-02"),
			CompletedChallenge: e.CompletedChallenge,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "calendar": calendar})
}
