package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/simfut/league-api/internal/api/metrics"
	"github.com/simfut/league-api/internal/api/middleware"
	"github.com/simfut/league-api/internal/core/ports"
)

// MatchHandler handles HTTP requests for the match catalog.
type MatchHandler struct {
	service ports.MatchService
}

func NewMatchHandler(service ports.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

type matchRequest struct {
	Date       string `json:"date"         validate:"required"`
	HomeTeamID string `json:"home_team_id" validate:"required"`
	AwayTeamID string `json:"away_team_id" validate:"required"`
	HomeGoals  int    `json:"home_goals"   validate:"gte=0"`
	AwayGoals  int    `json:"away_goals"   validate:"gte=0"`
}

func (r matchRequest) toInput() (ports.MatchInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return ports.MatchInput{}, echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}
	return ports.MatchInput{
		Date:       date,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		HomeGoals:  r.HomeGoals,
		AwayGoals:  r.AwayGoals,
	}, nil
}

// List handles GET /api/matches.
//
// @Summary      List matches
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Match
// @Failure      401  {object}  map[string]string
// @Router       /api/matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.service.FindAll(c.Request().Context(), middleware.AuthFrom(c))
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("matches", "list", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("matches", "list", "success").Inc()
	return c.JSON(http.StatusOK, matches)
}

// Get handles GET /api/matches/:id.
func (h *MatchHandler) Get(c echo.Context) error {
	match, err := h.service.FindByID(c.Request().Context(), middleware.AuthFrom(c), c.Param("id"))
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("matches", "get", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("matches", "get", "success").Inc()
	return c.JSON(http.StatusOK, match)
}

// Create handles POST /api/matches. ADMIN only, same as the other resources.
//
// @Summary      Create a match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Match
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/matches [post]
func (h *MatchHandler) Create(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	match, err := h.service.Create(c.Request().Context(), middleware.AuthFrom(c), input)
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("matches", "create", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("matches", "create", "success").Inc()
	return c.JSON(http.StatusCreated, match)
}

// Update handles PUT /api/matches/:id. ADMIN only.
func (h *MatchHandler) Update(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	match, err := h.service.Update(c.Request().Context(), middleware.AuthFrom(c), c.Param("id"), input)
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("matches", "update", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("matches", "update", "success").Inc()
	return c.JSON(http.StatusOK, match)
}

// Delete handles DELETE /api/matches/:id. ADMIN only.
func (h *MatchHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.AuthFrom(c), c.Param("id")); err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("matches", "delete", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("matches", "delete", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}
