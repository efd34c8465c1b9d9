package domain

import (
	"errors"
	"time"
)

// AlbumStatus represents where an album sits in the delivery/approval flow.
type AlbumStatus string

const (
	AlbumDraft     AlbumStatus = "draft"
	AlbumSubmitted AlbumStatus = "submitted"
	AlbumApproved  AlbumStatus = "approved"
	AlbumRejected  AlbumStatus = "rejected"
)

var albumTransitions = map[AlbumStatus][]AlbumStatus{
	AlbumDraft:     {AlbumSubmitted},
	AlbumSubmitted: {AlbumApproved, AlbumRejected},
	AlbumApproved:  {},
	AlbumRejected:  {AlbumSubmitted},
}

var ErrAlbumNotFound = errors.New("album not found")
var ErrBookingNotCompleted = errors.New("booking is not completed")

// CanTransitionTo reports whether the album may move to next.
func (s AlbumStatus) CanTransitionTo(next AlbumStatus) bool {
	for _, allowed := range albumTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Photo is a single delivered image inside an album. Only the URL and caption
// are stored; upload and thumbnailing happen elsewhere.
type Photo struct {
	URL     string `json:"url" bson:"url"`
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`
}

// Album is a set of photos delivered against a completed booking, subject to
// client approval before print orders can be placed on it.
type Album struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	BookingID      string      `json:"booking_id" bson:"booking_id"`
	ClientID       string      `json:"client_id" bson:"client_id"`
	PhotographerID string      `json:"photographer_id" bson:"photographer_id"`
	Title          string      `json:"title" bson:"title"`
	Photos         []Photo     `json:"photos" bson:"photos"`
	Status         AlbumStatus `json:"status" bson:"status"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
