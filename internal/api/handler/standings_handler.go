package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simfut/league-api/internal/api/middleware"
	"github.com/simfut/league-api/internal/core/ports"
)

// StandingsHandler serves the computed league table.
type StandingsHandler struct {
	service ports.StandingsService
}

func NewStandingsHandler(service ports.StandingsService) *StandingsHandler {
	return &StandingsHandler{service: service}
}

// Table handles GET /api/standings.
//
// @Summary      League table
// @Tags         standings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.StandingsRow
// @Failure      401  {object}  map[string]string
// @Router       /api/standings [get]
func (h *StandingsHandler) Table(c echo.Context) error {
	rows, err := h.service.Table(c.Request().Context(), middleware.AuthFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
