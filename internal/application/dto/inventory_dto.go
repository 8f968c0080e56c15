package dto

import "time"

// UpdateInventoryRequest entrada de PUT /api/inventory/{product_id}.
// Quantity fija el stock absoluto; Adjustment lo mueve en delta. No se pueden enviar ambos.
type UpdateInventoryRequest struct {
	Quantity          *int `json:"quantity" validate:"omitempty,min=0"`
	Adjustment        *int `json:"adjustment"`
	LowStockThreshold *int `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// InventoryResponse fila de inventario. IsLowStock es derivado.
type InventoryResponse struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id"`
	Quantity          int              `json:"quantity"`
	LowStockThreshold int              `json:"low_stock_threshold"`
	IsLowStock        bool             `json:"is_low_stock"`
	LastUpdated       time.Time        `json:"last_updated"`
	Product           *ProductResponse `json:"product,omitempty"`
}

// InventoryListResponse lista paginada de inventario.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
