package profile

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/aster/internal/repositories/profile"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/utils"
)

// Handler handles study profile routes
type Handler struct {
	profiles *profile.Repository
}

// NewHandler creates a new profile handler
func NewHandler(profiles *profile.Repository) *Handler {
	return &Handler{profiles: profiles}
}

// RegisterRoutes registers profile routes
func (h *Handler) RegisterRoutes(g *echo.Group) {
	users := g.Group("/users/:userId")
	users.GET("/profile", h.Get)
	users.PUT("/profile", h.Upsert)
	users.DELETE("/profile", h.Delete)
}

// Get returns the user's study profile
func (h *Handler) Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "profile_handler.Get")
	defer span.End()

	result, err := h.profiles.Get(ctx, c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Upsert creates or replaces the user's study profile
func (h *Handler) Upsert(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "profile_handler.Upsert")
	defer span.End()

	req, err := utils.BindRequest[models.UpsertProfileRequest](c)
	if err != nil {
		return err
	}

	result, err := h.profiles.Upsert(ctx, c.Param("userId"), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Delete soft-deletes the user's study profile
func (h *Handler) Delete(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "profile_handler.Delete")
	defer span.End()

	if err := h.profiles.Delete(ctx, c.Param("userId")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
