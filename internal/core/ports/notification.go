package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	// ListByUser returns a page of the user's notifications, newest first,
	// along with the total count.
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Notification, int64, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

// NotificationService exposes the per-user notification inbox.
type NotificationService interface {
	List(ctx context.Context, userID string, page, limit int) ([]*domain.Notification, int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	Delete(ctx context.Context, userID, notificationID string) error
}
