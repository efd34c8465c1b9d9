package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/api/metrics"
	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// DeliveryQueue abstracts the async delivery workers. Enqueue must never
// block the caller beyond its buffer.
type DeliveryQueue interface {
	Enqueue(n domain.Notification)
}

// UnreadCache abstracts the per-user unread counter cache (Redis).
type UnreadCache interface {
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, count int64) error
	Invalidate(ctx context.Context, userID string) error
}

// NotificationDispatcher turns domain events into persisted notifications.
// Every path through it is best-effort: persistence failures are logged and
// swallowed so the primary operation never fails or rolls back because of a
// notification.
type NotificationDispatcher struct {
	notifications ports.NotificationRepository
	users         ports.UserRepository
	queue         DeliveryQueue // optional
	cache         UnreadCache   // optional
	log           zerolog.Logger
}

// NewNotificationDispatcher creates a dispatcher. queue and cache may be nil.
func NewNotificationDispatcher(
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	queue DeliveryQueue,
	cache UnreadCache,
	log zerolog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifications: notifications,
		users:         users,
		queue:         queue,
		cache:         cache,
		log:           log,
	}
}

// BookingStatusChanged emits the notifications for a successful booking
// transition and returns those that were actually persisted.
//
// Fan-out rules: the client is notified when the booking becomes confirmed,
// cancelled, or completed; the photographer is additionally notified when the
// client initiated a cancellation. Transitions into pending (creation, admin
// reopen) are silent.
func (d *NotificationDispatcher) BookingStatusChanged(
	ctx context.Context,
	booking *domain.Booking,
	previous, next domain.BookingStatus,
	actorRole domain.Role,
) []domain.Notification {
	var emitted []domain.Notification

	switch next {
	case domain.StatusConfirmed:
		who := "your photographer"
		if name := d.userName(ctx, booking.PhotographerID); name != "" {
			who = "photographer " + name
		}
		emitted = d.emit(ctx, emitted, booking.ClientID, domain.NotificationBooking,
			"Booking confirmed",
			fmt.Sprintf("Booking confirmed by %s; date %s %s.", who, booking.Date, booking.StartTime))

	case domain.StatusCancelled:
		if actorRole == domain.RoleClient {
			emitted = d.emit(ctx, emitted, booking.ClientID, domain.NotificationBooking,
				"Booking cancelled",
				fmt.Sprintf("You cancelled your booking for %s %s.", booking.Date, booking.StartTime))
			who := "Your client"
			if name := d.userName(ctx, booking.ClientID); name != "" {
				who = "Client " + name
			}
			emitted = d.emit(ctx, emitted, booking.PhotographerID, domain.NotificationBooking,
				"Booking cancelled",
				fmt.Sprintf("%s cancelled the booking for %s %s.", who, booking.Date, booking.StartTime))
		} else {
			emitted = d.emit(ctx, emitted, booking.ClientID, domain.NotificationBooking,
				"Booking cancelled",
				fmt.Sprintf("Your booking for %s %s was cancelled.", booking.Date, booking.StartTime))
		}

	case domain.StatusCompleted:
		emitted = d.emit(ctx, emitted, booking.ClientID, domain.NotificationBooking,
			"Booking completed",
			"Your booking is complete; photos will be uploaded soon.")
	}

	return emitted
}

// Notify persists a single notification for userID and returns it, or nil
// when persistence failed.
func (d *NotificationDispatcher) Notify(
	ctx context.Context,
	userID string,
	ntype domain.NotificationType,
	title, message string,
) *domain.Notification {
	out := d.emit(ctx, nil, userID, ntype, title, message)
	if len(out) == 0 {
		return nil
	}
	return &out[0]
}

func (d *NotificationDispatcher) emit(
	ctx context.Context,
	acc []domain.Notification,
	userID string,
	ntype domain.NotificationType,
	title, message string,
) []domain.Notification {
	n := domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.notifications.Create(ctx, &n); err != nil {
		metrics.NotificationsFailedTotal.Inc()
		d.log.Warn().Err(err).
			Str("user_id", userID).
			Str("type", string(ntype)).
			Msg("failed to persist notification")
		return acc
	}

	metrics.NotificationsEmittedTotal.WithLabelValues(string(ntype)).Inc()

	if d.cache != nil {
		if err := d.cache.Invalidate(ctx, userID); err != nil {
			d.log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate unread cache")
		}
	}
	if d.queue != nil {
		d.queue.Enqueue(n)
	}

	return append(acc, n)
}

// userName resolves a user id to a display name, returning "" when the lookup
// fails so callers fall back to an id-free template.
func (d *NotificationDispatcher) userName(ctx context.Context, userID string) string {
	u, err := d.users.FindByID(ctx, userID)
	if err != nil {
		d.log.Warn().Err(err).Str("user_id", userID).Msg("failed to resolve user for notification template")
		return ""
	}
	return u.Name
}
