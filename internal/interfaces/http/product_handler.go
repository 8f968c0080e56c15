package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	svc ProductService
}

// NewProductHandler construye el handler.
func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create godoc
// @Summary      Crear producto
// @Description  Crea el producto y su registro de inventario en la misma transacción.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Actualización parcial: solo se modifican los campos enviados.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID del producto"
// @Param        body  body      dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category_id     query     string  false  "Filtrar por categoría"
// @Param        platform        query     string  false  "Filtrar por plataforma"
// @Param        is_active       query     bool    false  "Filtrar por estado"
// @Param        low_stock_only  query     bool    false  "Solo productos con stock bajo"
// @Param        limit           query     int     false  "Máximo de filas (1-1000, default 100)"
// @Param        offset          query     int     false  "Filas a omitir"
// @Success      200             {object}  dto.ProductListResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f, page, err := parseProductQuery(c)
	if err != nil {
		return errorResponse(c, err)
	}
	out, err := h.svc.List(c.UserContext(), f, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

func parseProductQuery(c *fiber.Ctx) (filter.Products, filter.Page, error) {
	f := filter.Products{
		CategoryID: c.Query("category_id"),
		Platform:   c.Query("platform"),
	}
	var err error
	if f.IsActive, err = queryOptBool(c, "is_active"); err != nil {
		return f, filter.Page{}, err
	}
	if f.LowStockOnly, err = queryBool(c, "low_stock_only"); err != nil {
		return f, filter.Page{}, err
	}
	page, err := parsePage(c)
	return f, page, err
}
