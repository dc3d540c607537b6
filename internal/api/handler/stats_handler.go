package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// StatsHandler serves aggregate dashboard counts.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type statsResponse struct {
	TotalUser      int64 `json:"totalUser"`
	TotalFoodMenus int64 `json:"totalFoodMenus"`
}

// Stats handles GET /admin-stats. Admin only. Counts only, no sensitive fields.
//
// @Summary      Admin dashboard counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) Stats(c echo.Context) error {
	result, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		TotalUser:      result.TotalUsers,
		TotalFoodMenus: result.TotalMenuItems,
	})
}
