package usecase

import (
	"context"
	"time"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
)

// Рубежи, на которых отправляем streak_milestone. Дневной счетчик растет
// максимум на 1 за день, так что каждый рубеж срабатывает один раз.
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

type StreakUsecase struct {
	repo          domain.StreakRepository
	notifications *NotificationUsecase
}

func NewStreakUsecase(repo domain.StreakRepository, notifications *NotificationUsecase) *StreakUsecase {
	return &StreakUsecase{repo: repo, notifications: notifications}
}

// UpdateDailyStreak отмечает сегодняшний день в календаре и пересчитывает
// счетчик серии. Проверка, вставка и обновление пользователя идут в одной
// транзакции, иначе два параллельных вызова увеличат серию дважды.
func (uc *StreakUsecase) UpdateDailyStreak(ctx context.Context, userID uuid.UUID, today time.Time) (*domain.StreakResult, error) {
	if today.IsZero() {
		today = time.Now()
	}
	day := truncateToDay(today)
	yesterday := day.AddDate(0, 0, -1)

	res := &domain.StreakResult{}
	err := uc.repo.Transaction(ctx, func(tx domain.StreakStore) error {
		done, err := tx.HasEntry(ctx, userID, day)
		if err != nil {
			return err
		}
		if done {
			res.AlreadyCompleted = true
			return nil
		}

		if err := tx.CreateEntry(ctx, &domain.StreakCalendarEntry{
			UserID:             userID,
			Date:               day,
			CompletedChallenge: true,
		}); err != nil {
			return err
		}

		continued, err := tx.HasEntry(ctx, userID, yesterday)
		if err != nil {
			return err
		}

		user, err := tx.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if continued {
			user.StreakCount++
		} else {
			user.StreakCount = 1
		}
		if user.StreakCount > user.LongestStreak {
			user.LongestStreak = user.StreakCount
		}

		res.Updated = true
		res.StreakContinued = continued
		res.StreakCount = user.StreakCount
		res.LongestStreak = user.LongestStreak
		return tx.SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	if res.Updated && streakMilestones[res.StreakCount] {
		uc.notifications.SendStreakMilestone(ctx, userID, res.StreakCount)
	}
	return res, nil
}

// GetStreakCalendar возвращает записи за месяц по возрастанию даты.
// Нулевые month/year означают текущий месяц/год.
func (uc *StreakUsecase) GetStreakCalendar(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]domain.StreakCalendarEntry, error) {
	now := time.Now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	return uc.repo.EntriesForMonth(ctx, userID, month, year)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
