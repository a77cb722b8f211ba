package repository

import (
	"context"
	"time"

	"gamification-service/internal/domain"
	"gamification-service/internal/infrastructure/cache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardRepository struct {
	db    *gorm.DB
	cache *cache.LeaderboardCache
}

func NewLeaderboardRepository(db *gorm.DB, cache *cache.LeaderboardCache) *LeaderboardRepository {
	return &LeaderboardRepository{db: db, cache: cache}
}

// UpsertEntries перезаписывает строки рейтинга по user_id и сбрасывает
// закешированные страницы топа.
func (r *LeaderboardRepository) UpsertEntries(ctx context.Context, entries []domain.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now()
	for i := range entries {
		entries[i].UpdatedAt = now
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rank", "total_xp", "challenges_completed", "battles_won", "updated_at",
			}),
		}).
		Create(&entries).Error
	if err != nil {
		return err
	}

	r.cache.Invalidate(ctx)
	return nil
}

func (r *LeaderboardRepository) TopUsers(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	// 1. Пробуем кеш
	if rows, ok := r.cache.GetTop(ctx, limit); ok {
		return rows, nil
	}

	// 2. БД
	var rows []domain.LeaderboardRow
	err := r.db.WithContext(ctx).Model(&domain.LeaderboardEntry{}).
		Select("leaderboard_entries.user_id, users.username, users.avatar_url, users.level, leaderboard_entries.total_xp, leaderboard_entries.rank").
		Joins("JOIN users ON users.id = leaderboard_entries.user_id").
		Order("leaderboard_entries.rank asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// 3. Сохраняем страницу в кеш
	r.cache.SetTop(ctx, limit, rows)
	return rows, nil
}
