package usecase_test

import (
	"context"
	"testing"

	"gamification-service/internal/application/usecase"
	"gamification-service/internal/domain"
)

func TestNotifications_ListNewestFirstWithDefaultLimit(t *testing.T) {
	repo := &memNotificationRepo{}
	uc := usecase.NewNotificationUsecase(repo)
	ctx := context.Background()

	users := newMemUserRepo()
	userID := users.add(domain.User{Username: "alice"})
	otherID := users.add(domain.User{Username: "bob"})

	for i := 0; i < 12; i++ {
		if _, err := uc.Create(ctx, userID, "msg", domain.NotificationLevelUp); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	last, err := uc.Create(ctx, userID, "latest", domain.NotificationBadgeUnlock)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := uc.Create(ctx, otherID, "not yours", domain.NotificationLevelUp); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// limit <= 0 означает лимит по умолчанию (10)
	items, err := uc.ListForUser(ctx, userID, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("Expected default limit of 10, got %d", len(items))
	}
	if items[0].ID != last.ID {
		t.Errorf("Newest notification must come first, got %q", items[0].Message)
	}
	for _, n := range items {
		if n.UserID != userID {
			t.Errorf("Foreign notification leaked into the list: %+v", n)
		}
	}
}

func TestNotifications_MarkAsReadIsIdempotent(t *testing.T) {
	repo := &memNotificationRepo{}
	uc := usecase.NewNotificationUsecase(repo)
	ctx := context.Background()

	users := newMemUserRepo()
	userID := users.add(domain.User{Username: "carol"})

	n, err := uc.Create(ctx, userID, "read me", domain.NotificationStreakMilestone)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n.IsRead {
		t.Fatal("New notification must start unread")
	}

	for i := 0; i < 2; i++ {
		if err := uc.MarkAsRead(ctx, n.ID); err != nil {
			t.Fatalf("MarkAsRead call %d failed: %v", i+1, err)
		}
	}

	items, _ := uc.ListForUser(ctx, userID, 1)
	if len(items) != 1 || !items[0].IsRead {
		t.Error("Notification must stay read after repeated MarkAsRead")
	}
}

func TestNotifications_LevelUpTemplate(t *testing.T) {
	repo := &memNotificationRepo{}
	uc := usecase.NewNotificationUsecase(repo)

	users := newMemUserRepo()
	userID := users.add(domain.User{Username: "dave"})

	uc.SendLevelUp(context.Background(), userID)

	items := repo.byType(domain.NotificationLevelUp)
	if len(items) != 1 {
		t.Fatalf("Expected one level-up notification, got %d", len(items))
	}
	if items[0].Message != "🎉 Congratulations! You leveled up!" {
		t.Errorf("Unexpected message: %q", items[0].Message)
	}
}
