package usecase

import (
	"context"
	"log"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
)

const (
	fastSolveSeconds = 120
	fastSolveCount   = 5
)

// UserStats — снимок статистики, по которому оцениваются правила.
type UserStats struct {
	StreakCount              int
	TotalChallengesCompleted int
	TotalBattlesWon          int
	FastSolves               int64
}

type badgeRule struct {
	key       string
	qualifies func(s UserStats) bool
}

// Правила независимы друг от друга и проверяются все до единого при каждом
// вызове, поэтому за один вызов может открыться несколько бейджей.
var badgeRules = []badgeRule{
	{domain.BadgeFastSolver, func(s UserStats) bool { return s.FastSolves >= fastSolveCount }},
	{domain.BadgeSevenStreak, func(s UserStats) bool { return s.StreakCount >= 7 }},
	{domain.BadgeCodingBeast, func(s UserStats) bool { return s.TotalBattlesWon >= 10 }},
	{domain.BadgeCodeWizard, func(s UserStats) bool { return s.TotalChallengesCompleted >= 50 }},
	{domain.BadgeBattleMaster, func(s UserStats) bool { return s.TotalBattlesWon >= 25 }},
}

// DefaultCatalog — справочник бейджей, сеется при старте сервиса.
func DefaultCatalog() []domain.Badge {
	return []domain.Badge{
		{Key: domain.BadgeFastSolver, Name: "Fast Solver", Description: "Complete 5 challenges in under 2 minutes each", IconURL: "/badges/fast_solver.png"},
		{Key: domain.BadgeSevenStreak, Name: "7-Day Streak", Description: "Maintain a 7-day challenge streak", IconURL: "/badges/seven_day_streak.png"},
		{Key: domain.BadgeCodingBeast, Name: "Coding Beast", Description: "Win 10 code battles", IconURL: "/badges/coding_beast.png"},
		{Key: domain.BadgeCodeWizard, Name: "Code Wizard", Description: "Complete 50 challenges", IconURL: "/badges/code_wizard.png"},
		{Key: domain.BadgeBattleMaster, Name: "Battle Master", Description: "Win 25 code battles", IconURL: "/badges/battle_master.png"},
	}
}

type BadgeUsecase struct {
	badges        domain.BadgeRepository
	users         domain.UserRepository
	challenges    domain.ChallengeRepository
	notifications *NotificationUsecase
}

func NewBadgeUsecase(
	badges domain.BadgeRepository,
	users domain.UserRepository,
	challenges domain.ChallengeRepository,
	notifications *NotificationUsecase,
) *BadgeUsecase {
	return &BadgeUsecase{
		badges:        badges,
		users:         users,
		challenges:    challenges,
		notifications: notifications,
	}
}

// CheckAndUnlockBadges оценивает каталог правил по текущей статистике и
// идемпотентно выдает новые бейджи. Возвращает имена только что открытых;
// повторный вызов для того же пользователя вернет пустой список.
func (uc *BadgeUsecase) CheckAndUnlockBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fastSolves, err := uc.challenges.CountCompletedUnder(ctx, userID, fastSolveSeconds)
	if err != nil {
		return nil, err
	}

	stats := UserStats{
		StreakCount:              user.StreakCount,
		TotalChallengesCompleted: user.TotalChallengesCompleted,
		TotalBattlesWon:          user.TotalBattlesWon,
		FastSolves:               fastSolves,
	}

	catalog, err := uc.badges.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]domain.Badge, len(catalog))
	for _, b := range catalog {
		byKey[b.Key] = b
	}

	unlocked := []string{}
	for _, rule := range badgeRules {
		if !rule.qualifies(stats) {
			continue
		}
		badge, ok := byKey[rule.key]
		if !ok {
			log.Printf("Badge %q missing from catalog", rule.key)
			continue
		}
		fresh, err := uc.badges.UnlockIfNew(ctx, userID, badge.ID)
		if err != nil {
			// Одно неудавшееся правило не должно ронять остальные.
			log.Printf("Error unlocking badge %q for %s: %v", rule.key, userID, err)
			continue
		}
		if fresh {
			unlocked = append(unlocked, badge.Name)
			uc.notifications.SendBadgeUnlock(ctx, userID, badge.Name)
		}
	}
	return unlocked, nil
}

// GetUserBadges возвращает весь каталог с датами разблокировки пользователя:
// свежеоткрытые первыми, не открытые — в конце с пустой датой.
func (uc *BadgeUsecase) GetUserBadges(ctx context.Context, userID uuid.UUID) ([]domain.UserBadgeView, error) {
	return uc.badges.ListForUser(ctx, userID)
}
