package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// AlbumService implements photo album delivery and client approval.
type AlbumService struct {
	albums   ports.AlbumRepository
	bookings ports.BookingRepository
	notifier *NotificationDispatcher
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewAlbumService(
	albums ports.AlbumRepository,
	bookings ports.BookingRepository,
	notifier *NotificationDispatcher,
	activity ActivityRecorder,
	log zerolog.Logger,
) *AlbumService {
	return &AlbumService{
		albums:   albums,
		bookings: bookings,
		notifier: notifier,
		activity: activity,
		log:      log,
	}
}

// Create opens a draft album against a completed booking owned by the
// photographer (admins may act on any booking).
func (s *AlbumService) Create(ctx context.Context, input ports.CreateAlbumInput) (*domain.Album, error) {
	booking, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	if input.Actor.Role != domain.RoleAdmin && input.Actor.ID != booking.PhotographerID {
		return nil, fmt.Errorf("create album: %w", domain.ErrForbidden)
	}
	if booking.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("create album: %w", domain.ErrBookingNotCompleted)
	}

	now := time.Now().UTC()
	album := &domain.Album{
		BookingID:      booking.ID,
		ClientID:       booking.ClientID,
		PhotographerID: booking.PhotographerID,
		Title:          input.Title,
		Photos:         input.Photos,
		Status:         domain.AlbumDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}

	s.log.Info().Str("album_id", album.ID).Str("booking_id", booking.ID).Msg("album created")
	return album, nil
}

// Submit moves a draft (or rejected) album to submitted and notifies the
// client that photos are ready for review.
func (s *AlbumService) Submit(ctx context.Context, albumID string, actor ports.Actor) (*domain.Album, error) {
	album, err := s.transition(ctx, albumID, actor, domain.AlbumSubmitted, albumPhotographerSide)
	if err != nil {
		return nil, fmt.Errorf("submit album: %w", err)
	}

	who := "Your photographer"
	if name := s.notifier.userName(ctx, album.PhotographerID); name != "" {
		who = "Photographer " + name
	}
	s.notifier.Notify(ctx, album.ClientID, domain.NotificationPhoto,
		"Album ready for review",
		fmt.Sprintf("%s submitted the album %q for your review.", who, album.Title))
	s.record(ctx, actor, "album.submitted", album)
	return album, nil
}

// Approve moves a submitted album to approved and notifies the photographer.
func (s *AlbumService) Approve(ctx context.Context, albumID string, actor ports.Actor) (*domain.Album, error) {
	album, err := s.transition(ctx, albumID, actor, domain.AlbumApproved, albumClientSide)
	if err != nil {
		return nil, fmt.Errorf("approve album: %w", err)
	}
	s.notifier.Notify(ctx, album.PhotographerID, domain.NotificationPhoto,
		"Album approved",
		fmt.Sprintf("Your album %q was approved.", album.Title))
	s.record(ctx, actor, "album.approved", album)
	return album, nil
}

// Reject moves a submitted album to rejected and notifies the photographer.
// A rejected album may be resubmitted after rework.
func (s *AlbumService) Reject(ctx context.Context, albumID string, actor ports.Actor) (*domain.Album, error) {
	album, err := s.transition(ctx, albumID, actor, domain.AlbumRejected, albumClientSide)
	if err != nil {
		return nil, fmt.Errorf("reject album: %w", err)
	}
	s.notifier.Notify(ctx, album.PhotographerID, domain.NotificationPhoto,
		"Album rejected",
		fmt.Sprintf("Your album %q was rejected.", album.Title))
	s.record(ctx, actor, "album.rejected", album)
	return album, nil
}

func (s *AlbumService) GetByID(ctx context.Context, albumID string, actor ports.Actor) (*domain.Album, error) {
	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	if !albumParticipant(actor, album) {
		return nil, fmt.Errorf("get album: %w", domain.ErrForbidden)
	}
	return album, nil
}

func (s *AlbumService) List(ctx context.Context, actor ports.Actor) ([]*domain.Album, error) {
	switch actor.Role {
	case domain.RoleClient:
		return s.albums.ListByClient(ctx, actor.ID)
	case domain.RolePhotographer:
		return s.albums.ListByPhotographer(ctx, actor.ID)
	case domain.RoleAdmin:
		// Empty filter returns every album.
		return s.albums.ListByPhotographer(ctx, "")
	default:
		return nil, fmt.Errorf("list albums: %w", domain.ErrForbidden)
	}
}

// Which side of the album an operation belongs to.
const (
	albumPhotographerSide = "photographer"
	albumClientSide       = "client"
)

func (s *AlbumService) transition(ctx context.Context, albumID string, actor ports.Actor, target domain.AlbumStatus, side string) (*domain.Album, error) {
	album, err := s.albums.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleAdmin {
		owner := album.PhotographerID
		if side == albumClientSide {
			owner = album.ClientID
		}
		if actor.ID != owner {
			return nil, domain.ErrForbidden
		}
	}
	if !album.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w (album %s to %s)", domain.ErrInvalidTransition, album.Status, target)
	}

	return s.albums.UpdateStatus(ctx, album.ID, target)
}

func (s *AlbumService) record(ctx context.Context, actor ports.Actor, action string, album *domain.Album) {
	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: "album",
		EntityID:   album.ID,
		Detail:     album.Title,
	})
}

func albumParticipant(actor ports.Actor, a *domain.Album) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.ID == a.ClientID || actor.ID == a.PhotographerID
}
