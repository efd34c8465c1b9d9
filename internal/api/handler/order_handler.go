package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// OrderHandler handles print orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	PhotoURL string `json:"photo_url" validate:"required,url"`
	Format   string `json:"format" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	AlbumID string             `json:"album_id" validate:"required"`
	Items   []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=placed processing shipped delivered cancelled"`
}

type orderListResponse struct {
	Orders []*domain.Order `json:"orders"`
	Count  int             `json:"count"`
}

// Place handles POST /v1/orders.
//
// @Summary      Place a print order against an approved album
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{
			PhotoURL: it.PhotoURL,
			Format:   it.Format,
			Quantity: it.Quantity,
		})
	}

	order, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		Actor:   actor,
		AlbumID: req.AlbumID,
		Items:   items,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// UpdateStatus handles PATCH /v1/orders/:id/status.
//
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "Requested status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), ports.OrderStatusInput{
		OrderID: c.Param("id"),
		Status:  domain.OrderStatus(req.Status),
		Actor:   actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// Get handles GET /v1/orders/:id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	order, err := h.service.GetByID(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// List handles GET /v1/orders.
//
// @Summary      List orders visible to the caller
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  orderListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: orders, Count: len(orders)})
}
