package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// NotificationService exposes the per-user inbox. Ownership is enforced here:
// another user's notification id behaves exactly like a missing one.
type NotificationService struct {
	repo  ports.NotificationRepository
	cache UnreadCache // optional
	log   zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, cache UnreadCache, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, cache: cache, log: log}
}

func (s *NotificationService) List(ctx context.Context, userID string, page, limit int) ([]*domain.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, userID, page, limit)
}

// UnreadCount serves from the cache when possible; cache errors fall back to
// a store count and are never surfaced.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if s.cache != nil {
		count, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("unread cache read failed, falling back to store")
		} else if ok {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, count); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("unread cache write failed")
		}
	}
	return count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.owned(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	if err := s.repo.MarkRead(ctx, n.ID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	n, err := s.owned(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, n.ID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *NotificationService) owned(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	if n.UserID != userID {
		// Do not leak existence of another user's notification.
		return nil, fmt.Errorf("get notification: %w", domain.ErrNotificationNotFound)
	}
	return n, nil
}

func (s *NotificationService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate unread cache")
	}
}
