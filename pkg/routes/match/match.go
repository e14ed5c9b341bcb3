package match

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/aster/internal/repositories/matchresult"
	"github.com/Ramsey-B/aster/internal/repositories/profile"
	"github.com/Ramsey-B/aster/internal/repositories/university"
	"github.com/Ramsey-B/aster/pkg/matching"
	"github.com/Ramsey-B/aster/pkg/models"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/utils"
)

// Handler handles match evaluation routes
type Handler struct {
	profiles     *profile.Repository
	universities *university.Repository
	results      *matchresult.Repository
	matcher      *matching.Service
	defaultLimit int
}

// NewHandler creates a new match handler
func NewHandler(profiles *profile.Repository, universities *university.Repository, results *matchresult.Repository, matcher *matching.Service, defaultLimit int) *Handler {
	return &Handler{
		profiles:     profiles,
		universities: universities,
		results:      results,
		matcher:      matcher,
		defaultLimit: defaultLimit,
	}
}

// RegisterRoutes registers match routes
func (h *Handler) RegisterRoutes(g *echo.Group) {
	matches := g.Group("/users/:userId/matches")
	matches.POST("/evaluate", h.Evaluate)
	matches.GET("", h.List)
	matches.DELETE("", h.Delete)
}

// EvaluateRequest narrows the university set to evaluate. Both filters are
// optional; an empty body evaluates the full catalog.
type EvaluateRequest struct {
	UniversityIDs []string `json:"university_ids"`
	Country       string   `json:"country"`
	Limit         int      `json:"limit" validate:"omitempty,min=1,max=500"`
}

// MatchView is the per-university evaluation returned to the client
type MatchView struct {
	University       models.University       `json:"university"`
	MatchScore       float64                 `json:"match_score"`
	RawScore         float64                 `json:"raw_score"`
	Category         models.MatchCategory    `json:"match_category"`
	AcceptanceChance models.AcceptanceChance `json:"acceptance_chance"`
	WhyItFits        []string                `json:"why_it_fits"`
	Breakdown        []models.FactorScore    `json:"breakdown"`
}

// Evaluate scores the user's profile against the selected universities and
// persists the ranked result
func (h *Handler) Evaluate(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "match_handler.Evaluate")
	defer span.End()

	userID := c.Param("userId")

	req, err := utils.BindRequest[EvaluateRequest](c)
	if err != nil {
		return err
	}

	profileRecord, err := h.profiles.Get(ctx, userID)
	if err != nil {
		return err
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}

	var universities []models.University
	if len(req.UniversityIDs) > 0 {
		universities, err = h.universities.ListByIDs(ctx, req.UniversityIDs)
	} else {
		universities, err = h.universities.List(ctx, req.Country, limit, 0)
	}
	if err != nil {
		return err
	}
	if len(universities) == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, "no universities matched the evaluation filters")
	}

	matches, err := h.matcher.EvaluateBatch(ctx, profileRecord, universities)
	if err != nil {
		return err
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, MatchView{
			University:       m.University,
			MatchScore:       matching.Percent(m.Result.Score),
			RawScore:         m.Result.Score,
			Category:         m.Result.Category,
			AcceptanceChance: m.Result.AcceptanceChance,
			WhyItFits:        m.Result.WhyItFits,
			Breakdown:        m.Result.Breakdown,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user_id": userID,
		"matches": views,
		"count":   len(views),
	})
}

// List returns the user's persisted match records, best score first
func (h *Handler) List(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "match_handler.List")
	defer span.End()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := h.results.ListByUser(ctx, c.Param("userId"), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"items": records,
		"count": len(records),
	})
}

// Delete removes the user's persisted match records
func (h *Handler) Delete(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "match_handler.Delete")
	defer span.End()

	if err := h.results.DeleteByUser(ctx, c.Param("userId")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
