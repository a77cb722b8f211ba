package handlers

import (
	"errors"
	"net/http"
	"time"

	"gamification-service/internal/application/usecase"
	"gamification-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BadgeHandler struct {
	badges *usecase.BadgeUsecase
}

func NewBadgeHandler(badges *usecase.BadgeUsecase) *BadgeHandler {
	return &BadgeHandler{badges: badges}
}

type badgeResp struct {
	ID          uuid.UUID  `json:"id"`
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IconURL     string     `json:"icon_url"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
}

func (h *BadgeHandler) List(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
		return
	}

	views, err := h.badges.GetUserBadges(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp := make([]badgeResp, 0, len(views))
	for _, v := range views {
		resp = append(resp, badgeResp{
			ID:          v.ID,
			Key:         v.Key,
			Name:        v.Name,
			Description: v.Description,
			IconURL:     v.IconURL,
			UnlockedAt:  v.UnlockedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "badges": resp})
}

func (h *BadgeHandler) Check(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
		return
	}

	unlocked, err := h.badges.CheckAndUnlockBadges(c, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "badges_unlocked": unlocked})
}
