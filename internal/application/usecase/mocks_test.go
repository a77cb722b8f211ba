package usecase_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"gamification-service/internal/domain"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("connection lost")

// ---- users ----

type memUserRepo struct {
	users   map[uuid.UUID]*domain.User
	failGet bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (m *memUserRepo) add(u domain.User) uuid.UUID {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Level == 0 {
		u.Level = 1
	}
	m.users[u.ID] = &u
	return u.ID
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if m.failGet {
		return nil, errStoreDown
	}
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) ListByXP(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalXP != out[j].TotalXP {
			return out[i].TotalXP > out[j].TotalXP
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *memUserRepo) Save(_ context.Context, user *domain.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

// ---- streak calendar ----

type memStreakRepo struct {
	users   *memUserRepo
	entries map[uuid.UUID]map[string]domain.StreakCalendarEntry
}

func newMemStreakRepo(users *memUserRepo) *memStreakRepo {
	return &memStreakRepo{
		users:   users,
		entries: make(map[uuid.UUID]map[string]domain.StreakCalendarEntry),
	}
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (m *memStreakRepo) HasEntry(_ context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	_, ok := m.entries[userID][dayKey(date)]
	return ok, nil
}

func (m *memStreakRepo) CreateEntry(_ context.Context, entry *domain.StreakCalendarEntry) error {
	byDay, ok := m.entries[entry.UserID]
	if !ok {
		byDay = make(map[string]domain.StreakCalendarEntry)
		m.entries[entry.UserID] = byDay
	}
	if _, exists := byDay[dayKey(entry.Date)]; exists {
		return errors.New("duplicate calendar entry")
	}
	byDay[dayKey(entry.Date)] = *entry
	return nil
}

func (m *memStreakRepo) GetUserForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.users.GetByID(ctx, id)
}

func (m *memStreakRepo) SaveUser(ctx context.Context, user *domain.User) error {
	return m.users.Save(ctx, user)
}

func (m *memStreakRepo) EntriesForMonth(_ context.Context, userID uuid.UUID, month time.Month, year int) ([]domain.StreakCalendarEntry, error) {
	var out []domain.StreakCalendarEntry
	for _, e := range m.entries[userID] {
		if e.Date.Month() == month && e.Date.Year() == year {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memStreakRepo) Transaction(_ context.Context, fn func(tx domain.StreakStore) error) error {
	return fn(m)
}

// ---- badges ----

type memBadgeRepo struct {
	catalog []domain.Badge
	unlocks map[uuid.UUID]map[uuid.UUID]time.Time
}

func newMemBadgeRepo(catalog []domain.Badge) *memBadgeRepo {
	for i := range catalog {
		if catalog[i].ID == uuid.Nil {
			catalog[i].ID = uuid.New()
		}
	}
	return &memBadgeRepo{
		catalog: catalog,
		unlocks: make(map[uuid.UUID]map[uuid.UUID]time.Time),
	}
}

func (m *memBadgeRepo) SeedCatalog(_ context.Context, badges []domain.Badge) error {
	return nil
}

func (m *memBadgeRepo) ListCatalog(_ context.Context) ([]domain.Badge, error) {
	return m.catalog, nil
}

func (m *memBadgeRepo) UnlockIfNew(_ context.Context, userID, badgeID uuid.UUID) (bool, error) {
	byBadge, ok := m.unlocks[userID]
	if !ok {
		byBadge = make(map[uuid.UUID]time.Time)
		m.unlocks[userID] = byBadge
	}
	if _, exists := byBadge[badgeID]; exists {
		return false, nil
	}
	byBadge[badgeID] = time.Now()
	return true, nil
}

func (m *memBadgeRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]domain.UserBadgeView, error) {
	views := make([]domain.UserBadgeView, 0, len(m.catalog))
	for _, b := range m.catalog {
		view := domain.UserBadgeView{Badge: b}
		if ts, ok := m.unlocks[userID][b.ID]; ok {
			unlocked := ts
			view.UnlockedAt = &unlocked
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		switch {
		case views[i].UnlockedAt == nil:
			return false
		case views[j].UnlockedAt == nil:
			return true
		default:
			return views[i].UnlockedAt.After(*views[j].UnlockedAt)
		}
	})
	return views, nil
}

func (m *memBadgeRepo) unlockCount(userID uuid.UUID) int {
	return len(m.unlocks[userID])
}

// ---- challenge attempts ----

type memChallengeRepo struct {
	fastSolves int64
}

func (m *memChallengeRepo) CountCompletedUnder(_ context.Context, _ uuid.UUID, _ int) (int64, error) {
	return m.fastSolves, nil
}

// ---- notifications ----

type memNotificationRepo struct {
	items []domain.Notification
}

func (m *memNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now().Add(time.Duration(len(m.items)) * time.Millisecond)
	m.items = append(m.items, *n)
	return nil
}

func (m *memNotificationRepo) ListForUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	var out []domain.Notification
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		if m.items[i].UserID == userID {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *memNotificationRepo) MarkAsRead(_ context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].IsRead = true
		}
	}
	return nil
}

func (m *memNotificationRepo) byType(notificationType string) []domain.Notification {
	var out []domain.Notification
	for _, n := range m.items {
		if n.NotificationType == notificationType {
			out = append(out, n)
		}
	}
	return out
}

// ---- leaderboard ----

type memLeaderboardRepo struct {
	users   *memUserRepo
	entries map[uuid.UUID]domain.LeaderboardEntry
}

func newMemLeaderboardRepo(users *memUserRepo) *memLeaderboardRepo {
	return &memLeaderboardRepo{
		users:   users,
		entries: make(map[uuid.UUID]domain.LeaderboardEntry),
	}
}

func (m *memLeaderboardRepo) UpsertEntries(_ context.Context, entries []domain.LeaderboardEntry) error {
	for _, e := range entries {
		m.entries[e.UserID] = e
	}
	return nil
}

func (m *memLeaderboardRepo) TopUsers(_ context.Context, limit int) ([]domain.LeaderboardRow, error) {
	all := make([]domain.LeaderboardEntry, 0, len(m.entries))
	for _, e := range m.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Rank < all[j].Rank })

	rows := make([]domain.LeaderboardRow, 0, limit)
	for _, e := range all {
		if len(rows) == limit {
			break
		}
		row := domain.LeaderboardRow{
			UserID:  e.UserID,
			TotalXP: e.TotalXP,
			Rank:    e.Rank,
		}
		if u, ok := m.users.users[e.UserID]; ok {
			row.Username = u.Username
			row.AvatarURL = u.AvatarURL
			row.Level = u.Level
		}
		rows = append(rows, row)
	}
	return rows, nil
}
