package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// ActivityLogRepository persists and lists audit records.
type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	// List returns a page of activity logs, newest first, and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.ActivityLog, int64, error)
}

// DashboardStats is the aggregate view shown on the admin dashboard.
type DashboardStats struct {
	BookingsByStatus map[domain.BookingStatus]int64
	UsersByRole      map[domain.Role]int64
	OrdersByStatus   map[domain.OrderStatus]int64
	Albums           int64
	Reviews          int64
}

// AdminService exposes the admin dashboard.
type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	Logs(ctx context.Context, page, limit int) ([]*domain.ActivityLog, int64, error)
}
