package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrReviewExists = errors.New("review already exists for booking")

// Review is a client rating of a photographer, tied to one completed booking.
// At most one review exists per booking.
type Review struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	BookingID      string    `json:"booking_id" bson:"booking_id"`
	ClientID       string    `json:"client_id" bson:"client_id"`
	PhotographerID string    `json:"photographer_id" bson:"photographer_id"`
	Rating         int       `json:"rating" bson:"rating"`
	Comment        string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
