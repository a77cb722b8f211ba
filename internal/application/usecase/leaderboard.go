package usecase

import (
	"context"

	"gamification-service/internal/domain"
)

const defaultTopLimit = 10

type LeaderboardUsecase struct {
	users       domain.UserRepository
	leaderboard domain.LeaderboardRepository
}

func NewLeaderboardUsecase(users domain.UserRepository, leaderboard domain.LeaderboardRepository) *LeaderboardUsecase {
	return &LeaderboardUsecase{users: users, leaderboard: leaderboard}
}

// UpdateLeaderboard — полный пересчет, не инкрементальный. Ранг 1 — максимум
// total_xp; при равенстве XP раньше идет меньший id (стабильный tie-break).
// Все поля строки берутся из одного чтения пользователя, так что запись не
// может смешать ранг и счетчики из разных снимков.
func (uc *LeaderboardUsecase) UpdateLeaderboard(ctx context.Context) error {
	users, err := uc.users.ListByXP(ctx)
	if err != nil {
		return err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, domain.LeaderboardEntry{
			UserID:              u.ID,
			Rank:                i + 1,
			TotalXP:             u.TotalXP,
			ChallengesCompleted: u.TotalChallengesCompleted,
			BattlesWon:          u.TotalBattlesWon,
		})
	}
	return uc.leaderboard.UpsertEntries(ctx, entries)
}

// GetTopUsers возвращает последний зафиксированный срез рейтинга.
func (uc *LeaderboardUsecase) GetTopUsers(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return uc.leaderboard.TopUsers(ctx, limit)
}
