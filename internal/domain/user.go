package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null;size:50"`
	AvatarURL string

	Level   int `gorm:"default:1"`
	TotalXP int `gorm:"column:total_xp;default:0"`

	StreakCount   int `gorm:"default:0"`
	LongestStreak int `gorm:"default:0"` // исторический максимум, никогда не уменьшается

	TotalChallengesCompleted int `gorm:"default:0"`
	TotalBattlesWon          int `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// ListByXP возвращает всех пользователей по убыванию total_xp
	// (при равенстве XP — по возрастанию id, чтобы ранги были стабильными).
	ListByXP(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
}
