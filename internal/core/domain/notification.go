package domain

import (
	"errors"
	"time"
)

// NotificationType categorises a notification by the domain area it came from.
type NotificationType string

const (
	NotificationBooking NotificationType = "booking"
	NotificationPhoto   NotificationType = "photo"
	NotificationOrder   NotificationType = "order"
	NotificationSystem  NotificationType = "system"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is a per-user inbox record created as a side effect of a
// domain event. It is never mutated after creation except the IsRead flip.
type Notification struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	UserID    string           `json:"user_id" bson:"user_id"`
	Title     string           `json:"title" bson:"title"`
	Message   string           `json:"message" bson:"message"`
	Type      NotificationType `json:"type" bson:"type"`
	IsRead    bool             `json:"is_read" bson:"is_read"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}
