package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simfut/league-api/internal/api/metrics"
	"github.com/simfut/league-api/internal/api/middleware"
	"github.com/simfut/league-api/internal/core/ports"
)

// TeamHandler handles HTTP requests for the team catalog.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type teamRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city"`
}

// List handles GET /api/teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Team
// @Failure      401  {object}  map[string]string
// @Router       /api/teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.service.FindAll(c.Request().Context(), middleware.AuthFrom(c))
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("teams", "list", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("teams", "list", "success").Inc()
	return c.JSON(http.StatusOK, teams)
}

// Get handles GET /api/teams/:id.
//
// @Summary      Get a team by id
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Team
// @Failure      404  {object}  map[string]string
// @Router       /api/teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	team, err := h.service.FindByID(c.Request().Context(), middleware.AuthFrom(c), c.Param("id"))
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("teams", "get", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("teams", "get", "success").Inc()
	return c.JSON(http.StatusOK, team)
}

// Create handles POST /api/teams. ADMIN only.
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Team
// @Failure      403  {object}  map[string]string
// @Router       /api/teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Create(c.Request().Context(), middleware.AuthFrom(c), ports.TeamInput{
		Name: req.Name,
		City: req.City,
	})
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("teams", "create", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("teams", "create", "success").Inc()
	return c.JSON(http.StatusCreated, team)
}

// Update handles PUT /api/teams/:id. ADMIN only.
func (h *TeamHandler) Update(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Update(c.Request().Context(), middleware.AuthFrom(c), c.Param("id"), ports.TeamInput{
		Name: req.Name,
		City: req.City,
	})
	if err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("teams", "update", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("teams", "update", "success").Inc()
	return c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /api/teams/:id. ADMIN only.
func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.AuthFrom(c), c.Param("id")); err != nil {
		metrics.CatalogOpsTotal.WithLabelValues("teams", "delete", "error").Inc()
		return err
	}
	metrics.CatalogOpsTotal.WithLabelValues("teams", "delete", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}
