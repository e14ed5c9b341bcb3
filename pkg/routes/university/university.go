package university

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/aster/internal/repositories/university"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

// Handler handles university catalog routes
type Handler struct {
	universities *university.Repository
}

// NewHandler creates a new university handler
func NewHandler(universities *university.Repository) *Handler {
	return &Handler{universities: universities}
}

// RegisterRoutes registers university routes
func (h *Handler) RegisterRoutes(g *echo.Group) {
	unis := g.Group("/universities")
	unis.GET("", h.List)
	unis.GET("/:id", h.Get)
}

// List returns universities ordered by rank, optionally filtered by country
func (h *Handler) List(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "university_handler.List")
	defer span.End()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	items, err := h.universities.List(ctx, c.QueryParam("country"), limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

// Get returns a single university by ID
func (h *Handler) Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "university_handler.Get")
	defer span.End()

	result, err := h.universities.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
