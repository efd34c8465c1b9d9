package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// AdminService aggregates the dashboard counters and serves the audit log.
type AdminService struct {
	bookings ports.BookingRepository
	users    ports.UserRepository
	orders   ports.OrderRepository
	albums   ports.AlbumRepository
	reviews  ports.ReviewRepository
	logs     ports.ActivityLogRepository
	log      zerolog.Logger
}

func NewAdminService(
	bookings ports.BookingRepository,
	users ports.UserRepository,
	orders ports.OrderRepository,
	albums ports.AlbumRepository,
	reviews ports.ReviewRepository,
	logs ports.ActivityLogRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		bookings: bookings,
		users:    users,
		orders:   orders,
		albums:   albums,
		reviews:  reviews,
		logs:     logs,
		log:      log,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	bookings, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: bookings: %w", err)
	}
	users, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: users: %w", err)
	}
	orders, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: orders: %w", err)
	}
	albums, err := s.albums.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: albums: %w", err)
	}
	reviews, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: reviews: %w", err)
	}

	return &ports.DashboardStats{
		BookingsByStatus: bookings,
		UsersByRole:      users,
		OrdersByStatus:   orders,
		Albums:           albums,
		Reviews:          reviews,
	}, nil
}

func (s *AdminService) Logs(ctx context.Context, page, limit int) ([]*domain.ActivityLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.logs.List(ctx, page, limit)
}
