package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto junto con su fila de inventario.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,max=200"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price" swaggertype:"string" example:"199.99"`
	SKU               string          `json:"sku" validate:"required,max=50"`
	CategoryID        string          `json:"category_id" validate:"required,uuid"`
	Platform          string          `json:"platform" example:"Amazon"`
	IsActive          *bool           `json:"is_active"`
	InitialStock      int             `json:"initial_stock" validate:"min=0"`
	LowStockThreshold *int            `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// UpdateProductRequest actualización parcial; los campos ausentes no cambian. El SKU es inmutable.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string"`
	CategoryID  *string          `json:"category_id"`
	Platform    *string          `json:"platform"`
	IsActive    *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	SKU         string          `json:"sku"`
	CategoryID  string          `json:"category_id"`
	Platform    string          `json:"platform"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
