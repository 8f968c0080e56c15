package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

// SaleRecordedEvent payload de sales.recorded.
type SaleRecordedEvent struct {
	SaleID         string          `json:"sale_id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Platform       string          `json:"platform"`
	OrderID        string          `json:"order_id,omitempty"`
	SaleDate       time.Time       `json:"sale_date"`
	RemainingStock int             `json:"remaining_stock"`
}

// LowStockEvent payload de inventory.low_stock.
type LowStockEvent struct {
	ProductID         string    `json:"product_id"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LastUpdated       time.Time `json:"last_updated"`
}

// crossedLowStock true cuando la fila pasa de stock normal a bajo con esta escritura.
func crossedLowStock(before, after entity.Inventory) bool {
	return !before.IsLowStock() && after.IsLowStock()
}

// publish envía el evento; la escritura ya está confirmada, así que un fallo solo se registra.
func publish(ctx context.Context, events ports.EventPublisher, log *logger.Logger, topic, key string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, topic, key, payload); err != nil {
		log.Warn().Err(err).Str("topic", topic).Str("key", key).Msg("no se pudo publicar el evento")
	}
}

func lowStockEvent(inv entity.Inventory) LowStockEvent {
	return LowStockEvent{
		ProductID:         inv.ProductID,
		Quantity:          inv.Quantity,
		LowStockThreshold: inv.LowStockThreshold,
		LastUpdated:       inv.LastUpdated,
	}
}
