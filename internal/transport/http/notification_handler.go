package handlers

import (
	"net/http"
	"strconv"
	"time"

	"gamification-service/internal/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifications *usecase.NotificationUsecase
}

func NewNotificationHandler(notifications *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationResp struct {
	ID               uuid.UUID `json:"id"`
	Message          string    `json:"message"`
	NotificationType string    `json:"notification_type"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user id"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.notifications.ListForUser(c, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp := make([]notificationResp, 0, len(items))
	for _, n := range items {
		resp = append(resp, notificationResp{
			ID:               n.ID,
			Message:          n.Message,
			NotificationType: n.NotificationType,
			IsRead:           n.IsRead,
			CreatedAt:        n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": resp})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid notification id"})
		return
	}

	if err := h.notifications.MarkAsRead(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type createNotificationReq struct {
	UserID           uuid.UUID `json:"user_id" binding:"required"`
	Message          string    `json:"message" binding:"required"`
	NotificationType string    `json:"notification_type"`
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := h.notifications.Create(c, req.UserID, req.Message, req.NotificationType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Notification created"})
}
