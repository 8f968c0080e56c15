package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// UnitPrice, SaleDate y Platform toman el precio, la fecha actual y la plataforma del producto si se omiten.
type CreateSaleRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" swaggertype:"string" example:"24.99"`
	SaleDate  *time.Time       `json:"sale_date"`
	Platform  string           `json:"platform"`
	OrderID   string           `json:"order_id"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
	SaleDate    time.Time       `json:"sale_date"`
	Platform    string          `json:"platform"`
	OrderID     string          `json:"order_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
