package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// AdminHandler exposes the admin dashboard.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type dashboardResponse struct {
	Bookings map[domain.BookingStatus]int64 `json:"bookings"`
	Users    map[domain.Role]int64          `json:"users"`
	Orders   map[domain.OrderStatus]int64   `json:"orders"`
	Albums   int64                          `json:"albums"`
	Reviews  int64                          `json:"reviews"`
}

type activityListResponse struct {
	Logs  []*domain.ActivityLog `json:"logs"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Dashboard aggregates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Bookings: stats.BookingsByStatus,
		Users:    stats.UsersByRole,
		Orders:   stats.OrdersByStatus,
		Albums:   stats.Albums,
		Reviews:  stats.Reviews,
	})
}

// Logs handles GET /v1/admin/activity.
//
// @Summary      Recent activity log
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  activityListResponse
// @Failure      403    {object}  map[string]string
// @Router       /v1/admin/activity [get]
func (h *AdminHandler) Logs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}

	logs, total, err := h.service.Logs(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, activityListResponse{Logs: logs, Total: total, Page: page})
}
