package handler

import (
	"github.com/shutterstudio/studio-api/internal/core/domain"
)

type createBookingRequest struct {
	PhotographerID string `json:"photographer_id" validate:"required"`
	Date           string `json:"date" validate:"required"`
	StartTime      string `json:"start_time" validate:"required"`
	EndTime        string `json:"end_time" validate:"required"`
	Type           string `json:"type" validate:"required"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Notes  string `json:"notes"`
}

type bookingListResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
	Count    int               `json:"count"`
}
