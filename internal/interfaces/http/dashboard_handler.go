package http

import (
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler maneja el resumen del dashboard.
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSummary godoc
// @Summary      Resumen del día y del mes en curso
// @Description  Ingresos y órdenes de hoy y del mes, top 5 productos del mes y cantidad de ítems con stock bajo.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.svc.GetSummary(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(summary)
}
