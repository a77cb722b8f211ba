package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	NotificationLevelUp         = "level_up"
	NotificationStreakMilestone = "streak_milestone"
	NotificationBadgeUnlock     = "badge_unlock"
)

// Записи только добавляются; меняется лишь флаг IsRead.
type Notification struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;index;not null"`
	Message          string    `gorm:"not null"`
	NotificationType string    `gorm:"size:50"`
	IsRead           bool      `gorm:"default:false"`
	CreatedAt        time.Time
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
}
