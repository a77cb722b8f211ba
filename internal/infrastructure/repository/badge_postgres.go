package repository

import (
	"context"
	"time"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// SeedCatalog досоздает недостающие бейджи по ключу. Повторный запуск
// сервиса существующие строки не трогает.
func (r *BadgeRepository) SeedCatalog(ctx context.Context, badges []domain.Badge) error {
	for i := range badges {
		err := r.db.WithContext(ctx).
			Where(domain.Badge{Key: badges[i].Key}).
			Attrs(domain.Badge{
				Name:        badges[i].Name,
				Description: badges[i].Description,
				IconURL:     badges[i].IconURL,
			}).
			FirstOrCreate(&badges[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *BadgeRepository) ListCatalog(ctx context.Context) ([]domain.Badge, error) {
	var badges []domain.Badge
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&badges).Error
	return badges, err
}

// UnlockIfNew — условная вставка по составному первичному ключу
// (user_id, badge_id). При конфликте ничего не делаем; RowsAffected
// показывает, была ли выдача новой.
func (r *BadgeRepository) UnlockIfNew(ctx context.Context, userID, badgeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.UserBadge{
			UserID:     userID,
			BadgeID:    badgeID,
			UnlockedAt: time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *BadgeRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserBadgeView, error) {
	var rows []domain.UserBadgeView
	err := r.db.WithContext(ctx).Model(&domain.Badge{}).
		Select("badges.*, user_badges.unlocked_at").
		Joins("LEFT JOIN user_badges ON user_badges.badge_id = badges.id AND user_badges.user_id = ?", userID).
		Order("user_badges.unlocked_at DESC NULLS LAST").
		Scan(&rows).Error
	return rows, err
}
