package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	svc SaleService
}

// NewSaleHandler construye el handler.
func NewSaleHandler(svc SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock y registra la venta en una transacción. Si la cantidad supera el stock
// @Description  responde 409 sin modificar nada. Con Idempotency-Key una repetición devuelve la venta original (200).
// @Description  Mientras la misma clave siga en curso responde 409 CONFLICT.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                 false  "Clave de idempotencia"
// @Param        body             body      dto.CreateSaleRequest  true   "Datos de la venta"
// @Success      201              {object}  dto.SaleResponse
// @Success      200              {object}  dto.SaleResponse
// @Failure      400              {object}  dto.ErrorResponse
// @Failure      404              {object}  dto.ErrorResponse
// @Failure      409              {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, replayed, err := h.svc.Create(c.UserContext(), c.Get(HeaderIdempotencyKey), in)
	if err != nil {
		return errorResponse(c, err)
	}
	if replayed {
		c.Set(HeaderReplayed, "true")
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         sales
// @Produce      json
// @Param        start_date   query     string  false  "Desde (YYYY-MM-DD o RFC3339)"
// @Param        end_date     query     string  false  "Hasta, inclusive (YYYY-MM-DD cubre el día completo)"
// @Param        product_id   query     string  false  "Filtrar por producto"
// @Param        category_id  query     string  false  "Filtrar por categoría"
// @Param        platform     query     string  false  "Filtrar por plataforma"
// @Param        limit        query     int     false  "Máximo de filas (1-1000, default 100)"
// @Param        offset       query     int     false  "Filas a omitir"
// @Success      200          {object}  dto.SaleListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	dates, err := parseDates(c)
	if err != nil {
		return errorResponse(c, err)
	}
	page, err := parsePage(c)
	if err != nil {
		return errorResponse(c, err)
	}
	f := filter.Sales{
		Dates:      dates,
		ProductID:  c.Query("product_id"),
		CategoryID: c.Query("category_id"),
		Platform:   c.Query("platform"),
	}
	out, err := h.svc.List(c.UserContext(), f, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
