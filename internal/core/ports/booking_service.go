package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// Actor is the authenticated identity performing an operation, as supplied by
// the auth middleware. The core trusts it without re-verifying credentials.
type Actor struct {
	ID   string
	Role domain.Role
}

// CreateBookingInput carries all data needed to create a new booking.
// Date is "2006-01-02"; StartTime and EndTime are "15:04".
type CreateBookingInput struct {
	ClientID       string
	PhotographerID string
	Date           string
	StartTime      string
	EndTime        string
	Type           string
	Location       string
	Notes          string
}

// UpdateStatusInput carries a single status-change request. Notes is optional
// and left untouched when empty.
type UpdateStatusInput struct {
	BookingID string
	Status    domain.BookingStatus
	Actor     Actor
	Notes     string
}

// ListBookingsInput carries the parameters for the booking list endpoint.
// Clients and photographers are always scoped to their own bookings; the
// status filter is honoured for admins only.
type ListBookingsInput struct {
	Actor  Actor
	Status string
}

// BookingService defines the booking lifecycle use cases. UpdateStatus is the
// only write path for booking status in the system.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID string, actor Actor) (*domain.Booking, error)
	List(ctx context.Context, input ListBookingsInput) ([]*domain.Booking, error)
}
