package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	FindByBooking(ctx context.Context, bookingID string) (*domain.Review, error)
	ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Review, error)
	Count(ctx context.Context) (int64, error)
}

// CreateReviewInput carries the data for a new review.
type CreateReviewInput struct {
	Actor     Actor
	BookingID string
	Rating    int
	Comment   string
}

// ReviewService defines review use cases.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Review, error)
}
