package repository

import (
	"context"
	"errors"
	"time"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

func (r *StreakRepository) HasEntry(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.StreakCalendarEntry{}).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *StreakRepository) CreateEntry(ctx context.Context, entry *domain.StreakCalendarEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetUserForUpdate читает пользователя под FOR UPDATE, чтобы параллельное
// обновление серии того же пользователя дождалось коммита.
func (r *StreakRepository) GetUserForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *StreakRepository) SaveUser(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *StreakRepository) EntriesForMonth(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]domain.StreakCalendarEntry, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var entries []domain.StreakCalendarEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?",
			userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}

func (r *StreakRepository) Transaction(ctx context.Context, fn func(tx domain.StreakStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&StreakRepository{db: tx})
	})
}
