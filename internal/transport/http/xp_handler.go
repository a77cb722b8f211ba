package handlers

import (
	"net/http"

	"gamification-service/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type XPHandler struct {
	xp *usecase.XPUsecase
}

func NewXPHandler(xp *usecase.XPUsecase) *XPHandler {
	return &XPHandler{xp: xp}
}

type calculateXPReq struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	BaseXP    int       `json:"base_xp" binding:"required"`
	BonusType string    `json:"bonus_type"`
}

func (h *XPHandler) Calculate(c *gin.Context) {
	var req calculateXPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.BonusType == "" {
		req.BonusType = usecase.BonusDailyMultiplier
	}

	res := h.xp.CalculateBonusXP(c, req.UserID, req.BaseXP, req.BonusType)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"final_xp":   res.FinalXP,
		"multiplier": res.Multiplier,
	})
}
