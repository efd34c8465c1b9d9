package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// AlbumHandler handles photo album delivery and client approval.
type AlbumHandler struct {
	service ports.AlbumService
}

func NewAlbumHandler(service ports.AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

type photoRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption"`
}

type createAlbumRequest struct {
	BookingID string         `json:"booking_id" validate:"required"`
	Title     string         `json:"title" validate:"required"`
	Photos    []photoRequest `json:"photos" validate:"dive"`
}

type albumListResponse struct {
	Albums []*domain.Album `json:"albums"`
	Count  int             `json:"count"`
}

// Create handles POST /v1/albums.
//
// @Summary      Create a draft album for a completed booking
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAlbumRequest  true  "Album details"
// @Success      201   {object}  domain.Album
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/albums [post]
func (h *AlbumHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createAlbumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	photos := make([]domain.Photo, 0, len(req.Photos))
	for _, p := range req.Photos {
		photos = append(photos, domain.Photo{URL: p.URL, Caption: p.Caption})
	}

	album, err := h.service.Create(c.Request().Context(), ports.CreateAlbumInput{
		Actor:     actor,
		BookingID: req.BookingID,
		Title:     req.Title,
		Photos:    photos,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, album)
}

// Submit handles POST /v1/albums/:id/submit.
//
// @Summary      Submit an album for client review
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Album id"
// @Success      200  {object}  domain.Album
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/albums/{id}/submit [post]
func (h *AlbumHandler) Submit(c echo.Context) error {
	return h.transition(c, h.service.Submit)
}

// Approve handles POST /v1/albums/:id/approve.
//
// @Summary      Approve a submitted album
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Album id"
// @Success      200  {object}  domain.Album
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/albums/{id}/approve [post]
func (h *AlbumHandler) Approve(c echo.Context) error {
	return h.transition(c, h.service.Approve)
}

// Reject handles POST /v1/albums/:id/reject.
//
// @Summary      Reject a submitted album
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Album id"
// @Success      200  {object}  domain.Album
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/albums/{id}/reject [post]
func (h *AlbumHandler) Reject(c echo.Context) error {
	return h.transition(c, h.service.Reject)
}

func (h *AlbumHandler) transition(
	c echo.Context,
	op func(ctx context.Context, albumID string, actor ports.Actor) (*domain.Album, error),
) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	album, err := op(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, album)
}

// Get handles GET /v1/albums/:id.
//
// @Summary      Get an album
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Album id"
// @Success      200  {object}  domain.Album
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/albums/{id} [get]
func (h *AlbumHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	album, err := h.service.GetByID(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, album)
}

// List handles GET /v1/albums.
//
// @Summary      List albums visible to the caller
// @Tags         albums
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  albumListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/albums [get]
func (h *AlbumHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	albums, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, albumListResponse{Albums: albums, Count: len(albums)})
}
