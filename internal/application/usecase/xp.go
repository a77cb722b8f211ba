package usecase

import (
	"context"
	"errors"
	"log"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
)

const (
	BonusDailyMultiplier = "daily_multiplier"
	BonusStreak          = "streak_bonus"
	BonusLevel           = "level_bonus"

	bonusStep = 0.05 // 5% за день серии / за уровень выше первого
)

type XPResult struct {
	FinalXP    int
	Multiplier float64
}

type XPUsecase struct {
	users domain.UserRepository
}

func NewXPUsecase(users domain.UserRepository) *XPUsecase {
	return &XPUsecase{users: users}
}

// CalculateBonusXP — чистый расчет по снимку пользователя, ничего не пишет.
// Начисление итогового XP остается на вызывающей стороне. При ошибке чтения
// не падаем, а возвращаем базовое значение с множителем 1.0.
func (uc *XPUsecase) CalculateBonusXP(ctx context.Context, userID uuid.UUID, baseXP int, bonusType string) XPResult {
	multiplier := 1.0

	switch bonusType {
	case BonusStreak:
		streak := 0
		if user, err := uc.readUser(ctx, userID); err == nil {
			streak = user.StreakCount
		}
		multiplier = 1.0 + float64(streak)*bonusStep
	case BonusLevel:
		level := 1
		if user, err := uc.readUser(ctx, userID); err == nil {
			level = user.Level
		}
		multiplier = 1.0 + float64(level-1)*bonusStep
	}

	// Усечение, не округление.
	return XPResult{FinalXP: int(float64(baseXP) * multiplier), Multiplier: multiplier}
}

func (uc *XPUsecase) readUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Printf("XP bonus lookup failed for %s: %v", userID, err)
	}
	return user, err
}
