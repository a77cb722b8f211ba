package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Бейджи идентифицируются стабильным ключом, а не "магическим" числовым ID.
const (
	BadgeFastSolver   = "fast_solver"
	BadgeSevenStreak  = "seven_day_streak"
	BadgeCodingBeast  = "coding_beast"
	BadgeCodeWizard   = "code_wizard"
	BadgeBattleMaster = "battle_master"
)

type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key         string    `gorm:"uniqueIndex;not null;size:50"`
	Name        string    `gorm:"not null;size:100"`
	Description string
	IconURL     string
	CreatedAt   time.Time
}

type UserBadge struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	BadgeID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnlockedAt time.Time
}

// UserBadgeView — строка каталога бейджей вместе с датой разблокировки
// конкретным пользователем (nil, если бейдж еще не открыт).
type UserBadgeView struct {
	Badge
	UnlockedAt *time.Time
}

type BadgeRepository interface {
	SeedCatalog(ctx context.Context, badges []Badge) error
	ListCatalog(ctx context.Context) ([]Badge, error)
	// UnlockIfNew вставляет (user, badge) только если такой пары еще нет.
	// Возвращает true, если вставка действительно произошла.
	UnlockIfNew(ctx context.Context, userID, badgeID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]UserBadgeView, error)
}
