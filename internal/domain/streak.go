package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Одна запись на пользователя в день. После создания не изменяется.
type StreakCalendarEntry struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date               time.Time `gorm:"type:date;primaryKey"`
	CompletedChallenge bool      `gorm:"default:true"`
	CreatedAt          time.Time
}

type StreakResult struct {
	AlreadyCompleted bool
	Updated          bool
	StreakContinued  bool
	StreakCount      int
	LongestStreak    int
}

// StreakStore — операции, которые updateDailyStreak выполняет внутри одной транзакции:
// проверка календаря, вставка записи за сегодня и обновление счетчиков пользователя.
type StreakStore interface {
	HasEntry(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
	CreateEntry(ctx context.Context, entry *StreakCalendarEntry) error
	GetUserForUpdate(ctx context.Context, id uuid.UUID) (*User, error)
	SaveUser(ctx context.Context, user *User) error
}

type StreakRepository interface {
	StreakStore
	EntriesForMonth(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]StreakCalendarEntry, error)
	Transaction(ctx context.Context, fn func(tx StreakStore) error) error
}
