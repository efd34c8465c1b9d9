package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// AlbumRepository defines persistence operations for albums.
type AlbumRepository interface {
	Create(ctx context.Context, a *domain.Album) error
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	// UpdateStatus sets the album status, refreshes updated_at, and returns
	// the post-update document.
	UpdateStatus(ctx context.Context, id string, status domain.AlbumStatus) (*domain.Album, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Album, error)
	// ListByPhotographer with an empty id returns every album (admin view).
	ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Album, error)
	Count(ctx context.Context) (int64, error)
}

// CreateAlbumInput carries the data for a new draft album.
type CreateAlbumInput struct {
	Actor     Actor
	BookingID string
	Title     string
	Photos    []domain.Photo
}

// AlbumService defines the album delivery and approval use cases.
type AlbumService interface {
	Create(ctx context.Context, input CreateAlbumInput) (*domain.Album, error)
	Submit(ctx context.Context, albumID string, actor Actor) (*domain.Album, error)
	Approve(ctx context.Context, albumID string, actor Actor) (*domain.Album, error)
	Reject(ctx context.Context, albumID string, actor Actor) (*domain.Album, error)
	GetByID(ctx context.Context, albumID string, actor Actor) (*domain.Album, error)
	List(ctx context.Context, actor Actor) ([]*domain.Album, error)
}
