package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// NotificationHandler exposes the caller's notification inbox.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type notificationListResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
}

type unreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// List handles GET /v1/notifications.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  notificationListResponse
// @Failure      401    {object}  map[string]string
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}

	items, total, err := h.service.List(c.Request().Context(), actor.ID, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notificationListResponse{
		Notifications: items,
		Total:         total,
		Page:          page,
	})
}

// UnreadCount handles GET /v1/notifications/unread.
//
// @Summary      Get the caller's unread notification count
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications/unread [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnreadCount(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, unreadCountResponse{Unread: count})
}

// MarkRead handles POST /v1/notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), actor.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/notifications/:id.
//
// @Summary      Delete a notification
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
