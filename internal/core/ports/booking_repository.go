package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// BookingUpdate carries the mutable fields of a status change. Notes is only
// written when non-empty; a status change never touches date or time fields.
type BookingUpdate struct {
	Status domain.BookingStatus
	Notes  string
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus merges the update into the stored booking, refreshes
	// updated_at, and returns the post-update document.
	UpdateStatus(ctx context.Context, id string, update BookingUpdate) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Booking, error)
	ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}
