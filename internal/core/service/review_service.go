package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// ReviewService implements client reviews of photographers. One review per
// completed booking, written by that booking's client.
type ReviewService struct {
	reviews  ports.ReviewRepository
	bookings ports.BookingRepository
	notifier *NotificationDispatcher
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	bookings ports.BookingRepository,
	notifier *NotificationDispatcher,
	activity ActivityRecorder,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		bookings: bookings,
		notifier: notifier,
		activity: activity,
		log:      log,
	}
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("create review: rating must be between 1 and 5")
	}

	booking, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if input.Actor.ID != booking.ClientID {
		return nil, fmt.Errorf("create review: %w", domain.ErrForbidden)
	}
	if booking.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("create review: %w", domain.ErrBookingNotCompleted)
	}

	if _, err := s.reviews.FindByBooking(ctx, booking.ID); err == nil {
		return nil, fmt.Errorf("create review: %w", domain.ErrReviewExists)
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, fmt.Errorf("create review: %w", err)
	}

	review := &domain.Review{
		BookingID:      booking.ID,
		ClientID:       booking.ClientID,
		PhotographerID: booking.PhotographerID,
		Rating:         input.Rating,
		Comment:        input.Comment,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	who := "A client"
	if name := s.notifier.userName(ctx, booking.ClientID); name != "" {
		who = name
	}
	s.notifier.Notify(ctx, booking.PhotographerID, domain.NotificationSystem,
		"New review",
		fmt.Sprintf("%s left a %d-star review on your booking.", who, review.Rating))

	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    input.Actor.ID,
		ActorRole:  input.Actor.Role,
		Action:     "review.created",
		EntityType: "review",
		EntityID:   review.ID,
		Detail:     fmt.Sprintf("%d stars for booking %s", review.Rating, review.BookingID),
	})

	return review, nil
}

func (s *ReviewService) ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Review, error) {
	return s.reviews.ListByPhotographer(ctx, photographerID)
}
