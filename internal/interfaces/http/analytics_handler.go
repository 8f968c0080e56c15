package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// AnalyticsHandler maneja los endpoints de analítica de ingresos.
type AnalyticsHandler struct {
	svc AnalyticsService
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Revenue godoc
// @Summary      Ingresos agrupados por período
// @Description  Buckets en UTC (semanas ISO desde el lunes). Sin fechas usa los últimos 30 días.
// @Description  Los períodos sin ventas no se devuelven.
// @Tags         analytics
// @Produce      json
// @Param        period       path      string  true   "daily | weekly | monthly | annual"
// @Param        start_date   query     string  false  "Desde (YYYY-MM-DD o RFC3339)"
// @Param        end_date     query     string  false  "Hasta, inclusive"
// @Param        category_id  query     string  false  "Filtrar por categoría"
// @Param        platform     query     string  false  "Filtrar por plataforma"
// @Success      200          {object}  dto.RevenueReportDTO
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/analytics/revenue/{period} [get]
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	f, err := parseRevenueQuery(c)
	if err != nil {
		return errorResponse(c, err)
	}
	out, err := h.svc.RevenueReport(c.UserContext(), c.Params("period"), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// RevenuePDF godoc
// @Summary      Reporte de ingresos en PDF
// @Tags         analytics
// @Produce      application/pdf
// @Param        period       path      string  true   "daily | weekly | monthly | annual"
// @Param        start_date   query     string  false  "Desde (YYYY-MM-DD o RFC3339)"
// @Param        end_date     query     string  false  "Hasta, inclusive"
// @Param        category_id  query     string  false  "Filtrar por categoría"
// @Param        platform     query     string  false  "Filtrar por plataforma"
// @Success      200          {file}    file
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/analytics/revenue/{period}/pdf [get]
func (h *AnalyticsHandler) RevenuePDF(c *fiber.Ctx) error {
	f, err := parseRevenueQuery(c)
	if err != nil {
		return errorResponse(c, err)
	}
	doc, report, err := h.svc.RevenueReportPDF(c.UserContext(), c.Params("period"), f)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="revenue-%s-%s.pdf"`,
		report.Period, report.StartDate.Format("20060102")))
	return c.Send(doc)
}

func parseRevenueQuery(c *fiber.Ctx) (filter.Revenue, error) {
	dates, err := parseDates(c)
	if err != nil {
		return filter.Revenue{}, err
	}
	return filter.Revenue{
		Dates:      dates,
		CategoryID: c.Query("category_id"),
		Platform:   c.Query("platform"),
	}, nil
}
