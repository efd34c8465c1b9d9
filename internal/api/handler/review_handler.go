package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// ReviewHandler handles photographer reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type reviewListResponse struct {
	Reviews []*domain.Review `json:"reviews"`
	Count   int              `json:"count"`
}

// Create handles POST /v1/reviews.
//
// @Summary      Review a completed booking
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		Actor:     actor,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}

// ListByPhotographer handles GET /v1/photographers/:id/reviews.
//
// @Summary      List a photographer's reviews
// @Tags         reviews
// @Produce      json
// @Param        id  path      string  true  "Photographer id"
// @Success      200  {object}  reviewListResponse
// @Router       /v1/photographers/{id}/reviews [get]
func (h *ReviewHandler) ListByPhotographer(c echo.Context) error {
	reviews, err := h.service.ListByPhotographer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewListResponse{Reviews: reviews, Count: len(reviews)})
}
