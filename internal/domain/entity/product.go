package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// Platform es una etiqueta libre (Amazon, Walmart, ...) que solo se usa para filtrar.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de lista, >= 0
	SKU         string          // código único global
	CategoryID  string
	Platform    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
