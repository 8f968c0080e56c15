package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// InventoryHandler maneja las peticiones HTTP de inventario.
type InventoryHandler struct {
	svc InventoryService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List godoc
// @Summary      Listar inventario
// @Description  Con low_stock_only=true devuelve los registros con quantity <= low_stock_threshold e ignora max_quantity.
// @Tags         inventory
// @Produce      json
// @Param        low_stock_only  query     bool    false  "Solo stock bajo"
// @Param        max_quantity    query     int     false  "Cantidad máxima"
// @Param        category_id     query     string  false  "Filtrar por categoría del producto"
// @Param        platform        query     string  false  "Filtrar por plataforma del producto"
// @Param        is_active       query     bool    false  "Filtrar por estado del producto"
// @Param        limit           query     int     false  "Máximo de filas (1-1000, default 100)"
// @Param        offset          query     int     false  "Filas a omitir"
// @Success      200             {object}  dto.InventoryListResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	f := filter.Inventory{
		CategoryID: c.Query("category_id"),
		Platform:   c.Query("platform"),
	}
	var err error
	if f.LowStockOnly, err = queryBool(c, "low_stock_only"); err != nil {
		return errorResponse(c, err)
	}
	if f.MaxQuantity, err = queryOptInt(c, "max_quantity"); err != nil {
		return errorResponse(c, err)
	}
	if f.IsActive, err = queryOptBool(c, "is_active"); err != nil {
		return errorResponse(c, err)
	}
	page, err := parsePage(c)
	if err != nil {
		return errorResponse(c, err)
	}
	out, err := h.svc.List(c.UserContext(), f, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar inventario de un producto
// @Description  quantity fija el valor absoluto; adjustment suma un delta. No se pueden enviar ambos.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        product_id  path      string                      true  "ID del producto"
// @Param        body        body      dto.UpdateInventoryRequest  true  "Cambios de inventario"
// @Success      200         {object}  dto.InventoryResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("product_id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
