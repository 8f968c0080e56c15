package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta de un producto. TotalAmount se fija al crearla.
type Sale struct {
	ID          string
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	SaleDate    time.Time
	Platform    string
	OrderID     string // opcional, referencia externa de la orden
	CreatedAt   time.Time
}

// SaleTotal calcula quantity × unit_price.
func SaleTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
