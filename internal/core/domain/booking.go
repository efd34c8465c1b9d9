package domain

import (
	"errors"
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// cancelled → pending is the admin-only reopen escape hatch.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {StatusPending},
}

// roleTargets lists which target statuses each role may set. Admins are bound
// only by the transition table, so they have no entry here.
var roleTargets = map[Role][]BookingStatus{
	RolePhotographer: {StatusConfirmed, StatusCompleted},
	RoleClient:       {StatusCancelled},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrRoleNotAllowed = errors.New("role not allowed to set status")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether the status is a recognised booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no table edge leaves this status. Note that
// cancelled is not terminal here because of the admin reopen edge.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// RoleMaySet reports whether role is permitted to set target as a booking
// status. Admins may set anything the table allows; unknown roles nothing.
func RoleMaySet(role Role, target BookingStatus) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range roleTargets[role] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionError reports a requested edge that is absent from the transition
// table. It unwraps to ErrInvalidTransition.
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// RoleError reports a transition the table permits but the actor's role does
// not. It unwraps to ErrRoleNotAllowed.
type RoleError struct {
	Role Role
	To   BookingStatus
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("role %s cannot set status %s", e.Role, e.To)
}

func (e *RoleError) Unwrap() error { return ErrRoleNotAllowed }

// Booking is the core aggregate. Date is a calendar date ("2006-01-02") and
// StartTime/EndTime are local times of day ("15:04"); all three are immutable
// after creation, there is no reschedule operation.
type Booking struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	ClientID       string        `json:"client_id" bson:"client_id"`
	PhotographerID string        `json:"photographer_id" bson:"photographer_id"`
	Date           string        `json:"date" bson:"date"`
	StartTime      string        `json:"start_time" bson:"start_time"`
	EndTime        string        `json:"end_time" bson:"end_time"`
	Type           string        `json:"type" bson:"type"`
	Location       string        `json:"location" bson:"location"`
	Status         BookingStatus `json:"status" bson:"status"`
	Notes          string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updated_at"`
}
