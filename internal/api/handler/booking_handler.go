package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		ClientID:       actor.ID,
		PhotographerID: req.PhotographerID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Type:           req.Type,
		Location:       req.Location,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}

// UpdateStatus handles PATCH /v1/bookings/:id/status.
//
// @Summary      Change a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "Requested status"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		BookingID: c.Param("id"),
		Status:    domain.BookingStatus(req.Status),
		Actor:     actor,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, booking)
}

// Get handles GET /v1/bookings/:id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	booking, err := h.service.GetByID(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, booking)
}

// List handles GET /v1/bookings.
//
// @Summary      List bookings visible to the caller
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter (admin only)"
// @Success      200     {object}  bookingListResponse
// @Failure      401     {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.List(c.Request().Context(), ports.ListBookingsInput{
		Actor:  actor,
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingListResponse{Bookings: bookings, Count: len(bookings)})
}
