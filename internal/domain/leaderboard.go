package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry — производный кеш ранжирования, полностью
// перезаписывается при пересчете.
type LeaderboardEntry struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rank                int       `gorm:"not null;index"`
	TotalXP             int       `gorm:"column:total_xp"`
	ChallengesCompleted int
	BattlesWon          int
	UpdatedAt           time.Time
}

// LeaderboardRow — строка выдачи топа вместе с отображаемыми полями пользователя.
type LeaderboardRow struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	Level     int       `json:"level"`
	TotalXP   int       `json:"total_xp"`
	Rank      int       `json:"rank"`
}

type LeaderboardRepository interface {
	UpsertEntries(ctx context.Context, entries []LeaderboardEntry) error
	TopUsers(ctx context.Context, limit int) ([]LeaderboardRow, error)
}
