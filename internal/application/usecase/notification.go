package usecase

import (
	"context"
	"fmt"
	"log"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
)

const defaultNotificationLimit = 10

type NotificationUsecase struct {
	repo domain.NotificationRepository
}

func NewNotificationUsecase(repo domain.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{repo: repo}
}

func (uc *NotificationUsecase) Create(ctx context.Context, userID uuid.UUID, message, notificationType string) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:           userID,
		Message:          message,
		NotificationType: notificationType,
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (uc *NotificationUsecase) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return uc.repo.ListForUser(ctx, userID, limit)
}

// MarkAsRead безусловно ставит is_read = true, повторный вызов безвреден.
func (uc *NotificationUsecase) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return uc.repo.MarkAsRead(ctx, id)
}

// Три готовых шаблона. Уведомление — побочный эффект движков,
// поэтому ошибку не возвращаем, только логируем.

func (uc *NotificationUsecase) SendLevelUp(ctx context.Context, userID uuid.UUID) {
	uc.sendQuiet(ctx, userID, "🎉 Congratulations! You leveled up!", domain.NotificationLevelUp)
}

func (uc *NotificationUsecase) SendStreakMilestone(ctx context.Context, userID uuid.UUID, streakCount int) {
	msg := fmt.Sprintf("🔥 Amazing! You've maintained a %d-day streak!", streakCount)
	uc.sendQuiet(ctx, userID, msg, domain.NotificationStreakMilestone)
}

func (uc *NotificationUsecase) SendBadgeUnlock(ctx context.Context, userID uuid.UUID, badgeName string) {
	msg := fmt.Sprintf("✨ New Badge Unlocked: %s", badgeName)
	uc.sendQuiet(ctx, userID, msg, domain.NotificationBadgeUnlock)
}

func (uc *NotificationUsecase) sendQuiet(ctx context.Context, userID uuid.UUID, message, notificationType string) {
	if _, err := uc.Create(ctx, userID, message, notificationType); err != nil {
		log.Printf("Error creating %s notification for %s: %v", notificationType, userID, err)
	}
}
