package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const ChallengeStatusCompleted = "completed"

// ChallengeAttempt — результат пользователя по задаче. BestTime в секундах.
type ChallengeAttempt struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	ChallengeID string    `gorm:"index;not null"`
	Status      string    `gorm:"size:20;default:'in_progress'"`
	BestTime    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ChallengeRepository interface {
	// CountCompletedUnder считает завершенные задачи с best_time меньше порога.
	CountCompletedUnder(ctx context.Context, userID uuid.UUID, maxSeconds int) (int64, error)
}
