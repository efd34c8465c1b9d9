package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/api/metrics"
	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// BookingService orchestrates the booking lifecycle. Its UpdateStatus method
// is the only writer of booking status in the system; any other path would
// bypass the transition invariants.
type BookingService struct {
	bookings ports.BookingRepository
	users    ports.UserRepository
	notifier *NotificationDispatcher
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	users ports.UserRepository,
	notifier *NotificationDispatcher,
	activity ActivityRecorder,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		users:    users,
		notifier: notifier,
		activity: activity,
		log:      log,
	}
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Create creates a pending booking for a client. The schedule fields are
// validated here because they are immutable afterwards.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("create booking: invalid date %q: %w", input.Date, err)
	}
	start, err := time.Parse(timeLayout, input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("create booking: invalid start time %q: %w", input.StartTime, err)
	}
	end, err := time.Parse(timeLayout, input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("create booking: invalid end time %q: %w", input.EndTime, err)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("create booking: end time must be after start time")
	}

	photographer, err := s.users.FindByID(ctx, input.PhotographerID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if photographer.Role != domain.RolePhotographer {
		return nil, fmt.Errorf("create booking: user %s is not a photographer: %w", input.PhotographerID, domain.ErrUserNotFound)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ClientID:       input.ClientID,
		PhotographerID: input.PhotographerID,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Type:           input.Type,
		Location:       input.Location,
		Status:         domain.StatusPending,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create booking")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.Type).Inc()
	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    input.ClientID,
		ActorRole:  domain.RoleClient,
		Action:     "booking.created",
		EntityType: "booking",
		EntityID:   booking.ID,
		Detail:     fmt.Sprintf("%s %s-%s with photographer %s", booking.Date, booking.StartTime, booking.EndTime, booking.PhotographerID),
	})

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("client_id", booking.ClientID).
		Str("photographer_id", booking.PhotographerID).
		Msg("booking created")

	return booking, nil
}

// UpdateStatus applies a single status change request:
//
//  1. Load the booking (not found propagates).
//  2. Relationship check: the actor must be an admin, the booking's client,
//     or the booking's photographer.
//  3. Validate the transition against the table and the actor's role.
//  4. Persist the new status (plus notes when provided).
//  5. Best-effort side effects: notifications, audit log, metrics.
//
// Requesting the current status is an idempotent no-op: success, no persist,
// zero notifications. Rejections happen before any mutation, so the store is
// never touched on a rejected request.
func (s *BookingService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if !actorMayAccess(input.Actor, booking) {
		metrics.BookingTransitionsRejectedTotal.WithLabelValues("forbidden").Inc()
		return nil, fmt.Errorf("update booking status: %w", domain.ErrForbidden)
	}

	if err := ValidateTransition(booking.Status, input.Status, input.Actor.Role); err != nil {
		reason := "invalid_transition"
		if errors.Is(err, domain.ErrRoleNotAllowed) {
			reason = "role_not_allowed"
		}
		metrics.BookingTransitionsRejectedTotal.WithLabelValues(reason).Inc()
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if input.Status == booking.Status {
		// Idempotent no-op: nothing to persist, nothing to notify.
		s.log.Debug().
			Str("booking_id", booking.ID).
			Str("status", string(booking.Status)).
			Msg("status unchanged, no-op")
		return booking, nil
	}

	previous := booking.Status
	updated, err := s.bookings.UpdateStatus(ctx, booking.ID, ports.BookingUpdate{
		Status: input.Status,
		Notes:  input.Notes,
	})
	if err != nil {
		s.log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to persist status change")
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	// Side effects only after a successful persist, and never fatal.
	s.notifier.BookingStatusChanged(ctx, updated, previous, input.Status, input.Actor.Role)
	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    input.Actor.ID,
		ActorRole:  input.Actor.Role,
		Action:     "booking.status_changed",
		EntityType: "booking",
		EntityID:   updated.ID,
		Detail:     fmt.Sprintf("%s -> %s", previous, input.Status),
	})
	metrics.BookingTransitionsTotal.WithLabelValues(string(previous), string(input.Status)).Inc()

	s.log.Info().
		Str("booking_id", updated.ID).
		Str("from", string(previous)).
		Str("to", string(input.Status)).
		Str("actor_role", string(input.Actor.Role)).
		Msg("booking status changed")

	return updated, nil
}

// GetByID returns a booking the actor is related to.
func (s *BookingService) GetByID(ctx context.Context, bookingID string, actor ports.Actor) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !actorMayAccess(actor, booking) {
		return nil, fmt.Errorf("get booking: %w", domain.ErrForbidden)
	}
	return booking, nil
}

// List returns the bookings visible to the actor: clients and photographers
// see their own, admins see everything with an optional status filter.
func (s *BookingService) List(ctx context.Context, input ports.ListBookingsInput) ([]*domain.Booking, error) {
	switch input.Actor.Role {
	case domain.RoleClient:
		return s.bookings.ListByClient(ctx, input.Actor.ID)
	case domain.RolePhotographer:
		return s.bookings.ListByPhotographer(ctx, input.Actor.ID)
	case domain.RoleAdmin:
		if input.Status != "" {
			return s.bookings.ListByStatus(ctx, domain.BookingStatus(input.Status))
		}
		return s.bookings.ListAll(ctx)
	default:
		return nil, fmt.Errorf("list bookings: %w", domain.ErrForbidden)
	}
}

// actorMayAccess is the identity/relationship check: admins, the booking's
// client, and the booking's photographer. Independent of the transition table.
func actorMayAccess(actor ports.Actor, b *domain.Booking) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.ID == b.ClientID || actor.ID == b.PhotographerID
}
