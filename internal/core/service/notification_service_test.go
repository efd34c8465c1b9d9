package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

func seedNotification(t *testing.T, repo *stubNotificationRepo, userID string) *domain.Notification {
	t.Helper()
	n := &domain.Notification{UserID: userID, Title: "Hello", Message: "A note.", Type: domain.NotificationSystem}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	return n
}

func TestUnreadCount_CacheHit(t *testing.T) {
	repo := newStubNotificationRepo()
	seedNotification(t, repo, "client_1")
	cache := newStubUnreadCache()
	cache.values["client_1"] = 7
	svc := NewNotificationService(repo, cache, discardLogger)

	count, err := svc.UnreadCount(context.Background(), "client_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Errorf("cache hit must win over the store, got %d", count)
	}
}

func TestUnreadCount_CacheMiss_PopulatesCache(t *testing.T) {
	repo := newStubNotificationRepo()
	seedNotification(t, repo, "client_1")
	seedNotification(t, repo, "client_1")
	seedNotification(t, repo, "other")
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	count, err := svc.UnreadCount(context.Background(), "client_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 unread, got %d", count)
	}
	if cache.values["client_1"] != 2 {
		t.Errorf("cache must be populated after a miss, got %v", cache.values)
	}
}

func TestUnreadCount_CacheErrorFallsBackToStore(t *testing.T) {
	repo := newStubNotificationRepo()
	seedNotification(t, repo, "client_1")
	cache := newStubUnreadCache()
	cache.getErr = errors.New("redis down")
	svc := NewNotificationService(repo, cache, discardLogger)

	count, err := svc.UnreadCount(context.Background(), "client_1")
	if err != nil {
		t.Fatalf("cache errors must not surface: %v", err)
	}
	if count != 1 {
		t.Errorf("expected store fallback count 1, got %d", count)
	}
}

func TestUnreadCount_NilCache(t *testing.T) {
	repo := newStubNotificationRepo()
	seedNotification(t, repo, "client_1")
	svc := NewNotificationService(repo, nil, discardLogger)

	count, err := svc.UnreadCount(context.Background(), "client_1")
	if err != nil || count != 1 {
		t.Errorf("expected 1, nil; got %d, %v", count, err)
	}
}

func TestMarkRead_OwnNotification(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(t, repo, "client_1")
	cache := newStubUnreadCache()
	cache.values["client_1"] = 1
	svc := NewNotificationService(repo, cache, discardLogger)

	if err := svc.MarkRead(context.Background(), "client_1", n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.GetByID(context.Background(), n.ID)
	if !got.IsRead {
		t.Error("notification must be marked read")
	}
	if len(cache.dels) != 1 {
		t.Error("unread cache must be invalidated")
	}
}

func TestMarkRead_AlreadyRead_SkipsWrite(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(t, repo, "client_1")
	repo.byID[n.ID].IsRead = true
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, discardLogger)

	if err := svc.MarkRead(context.Background(), "client_1", n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.dels) != 0 {
		t.Error("already-read notification must not touch the cache")
	}
}

func TestMarkRead_OtherUsersNotification_LooksMissing(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(t, repo, "client_1")
	svc := NewNotificationService(repo, nil, discardLogger)

	err := svc.MarkRead(context.Background(), "client_2", n.ID)
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
	got, _ := repo.GetByID(context.Background(), n.ID)
	if got.IsRead {
		t.Error("notification must remain unread")
	}
}

func TestDelete_OwnNotification(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(t, repo, "client_1")
	svc := NewNotificationService(repo, nil, discardLogger)

	if err := svc.Delete(context.Background(), "client_1", n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), n.ID); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Error("notification must be gone")
	}
}

func TestDelete_OtherUsersNotification_LooksMissing(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(t, repo, "client_1")
	svc := NewNotificationService(repo, nil, discardLogger)

	if err := svc.Delete(context.Background(), "client_2", n.ID); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestList_ClampsPaging(t *testing.T) {
	repo := newStubNotificationRepo()
	seedNotification(t, repo, "client_1")
	svc := NewNotificationService(repo, nil, discardLogger)

	items, total, err := svc.List(context.Background(), "client_1", 0, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected one notification, got %d/%d", len(items), total)
	}
}
