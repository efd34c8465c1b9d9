package service

import "github.com/shutterstudio/studio-api/internal/core/domain"

// ValidateTransition decides whether actorRole may move a booking from current
// to requested. It is pure: no I/O, no side effects.
//
// Requesting the current status is allowed and treated as a no-op by the
// caller. The base transition table is checked first, so an admin attempting
// an absent edge gets a transition error, not a role error.
func ValidateTransition(current, requested domain.BookingStatus, actorRole domain.Role) error {
	if requested == current {
		return nil
	}
	if !current.CanTransitionTo(requested) {
		return &domain.TransitionError{From: current, To: requested}
	}
	if !domain.RoleMaySet(actorRole, requested) {
		return &domain.RoleError{Role: actorRole, To: requested}
	}
	return nil
}
