package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simfut/league-api/internal/api/metrics"
	"github.com/simfut/league-api/internal/api/middleware"
	"github.com/simfut/league-api/internal/core/ports"
)

// PlayerHandler handles HTTP requests for the player catalog.
type PlayerHandler struct {
	service ports.PlayerService
}

func NewPlayerHandler(service ports.PlayerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

type playerRequest struct {
	Name        string `json:"name"         validate:"required"`
	Position    string `json:"position"`
	ShirtNumber int    `json:"shirt_number" validate:"required,gte=1"`
	TeamID      string `json:"team_id"      validate:"required"`
}

func (r playerRequest) toInput() ports.PlayerInput {
	return ports.PlayerInput{
		Name:        r.Name,
		Position:    r.Position,
		ShirtNumber: r.ShirtNumber,
		TeamID:      r.TeamID,
	}
}

// List handles GET /api/players.
//
// @Summary      List players
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Player
// @Failure      401  {object}  map[string]string
// @Router       /api/players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.service.FindAll(c.Request().Context(), middleware.AuthFrom(c))
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("players", "list", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("players", "list", "success").Inc()
	return c.JSON(http.StatusOK, players)
}

// Get handles GET /api/players/:id.
func (h *PlayerHandler) Get(c echo.Context) error {
	player, err := h.service.FindByID(c.Request().Context(), middleware.AuthFrom(c), c.Param("id"))
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("players", "get", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("players", "get", "success").Inc()
	return c.JSON(http.StatusOK, player)
}

// Create handles POST /api/players. ADMIN only.
//
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Player
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.service.Create(c.Request().Context(), middleware.AuthFrom(c), req.toInput())
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("players", "create", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("players", "create", "success").Inc()
	return c.JSON(http.StatusCreated, player)
}

// Update handles PUT /api/players/:id. ADMIN only.
func (h *PlayerHandler) Update(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.service.Update(c.Request().Context(), middleware.AuthFrom(c), c.Param("id"), req.toInput())
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("players", "update", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("players", "update", "success").Inc()
	return c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /api/players/:id. ADMIN only.
func (h *PlayerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.AuthFrom(c), c.Param("id")); err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("players", "delete", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("players", "delete", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}
