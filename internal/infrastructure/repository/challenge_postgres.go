package repository

import (
	"context"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) CountCompletedUnder(ctx context.Context, userID uuid.UUID, maxSeconds int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChallengeAttempt{}).
		Where("user_id = ? AND status = ? AND best_time < ?",
			userID, domain.ChallengeStatusCompleted, maxSeconds).
		Count(&count).Error
	return count, err
}
