package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// UserHandler handles account registration, profiles, and the public
// photographer directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role" validate:"required,oneof=client photographer"`
	Bio         string   `json:"bio"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
	AvatarURL   string   `json:"avatar_url"`
}

type updateProfileRequest struct {
	Name        string   `json:"name" validate:"required"`
	Bio         string   `json:"bio"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
	AvatarURL   string   `json:"avatar_url"`
}

type photographerListResponse struct {
	Photographers []*domain.User `json:"photographers"`
	Count         int            `json:"count"`
}

// Register handles POST /v1/auth/register.
//
// @Summary      Register a client or photographer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/auth/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Profile: domain.Profile{
			Bio:         req.Bio,
			Phone:       req.Phone,
			Specialties: req.Specialties,
			AvatarURL:   req.AvatarURL,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Me handles GET /v1/users/me.
//
// @Summary      Get the caller's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /v1/users/me.
//
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), actor.ID, req.Name, domain.Profile{
		Bio:         req.Bio,
		Phone:       req.Phone,
		Specialties: req.Specialties,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Photographers handles GET /v1/photographers, the public directory.
//
// @Summary      List photographers
// @Tags         users
// @Produce      json
// @Success      200  {object}  photographerListResponse
// @Router       /v1/photographers [get]
func (h *UserHandler) Photographers(c echo.Context) error {
	photographers, err := h.service.ListPhotographers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, photographerListResponse{
		Photographers: photographers,
		Count:         len(photographers),
	})
}
