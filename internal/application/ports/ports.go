package ports

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback y nada de lo escrito persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// Topics de los eventos de dominio.
const (
	TopicSaleRecorded      = "sales.recorded"
	TopicInventoryLowStock = "inventory.low_stock"
)

// EventPublisher publica eventos de dominio hacia un broker.
// Se invoca después del commit; un fallo no revierte la escritura.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
	Close() error
}

// IdempotencyStore guarda la venta creada para una Idempotency-Key.
type IdempotencyStore interface {
	// Reserve marca key como en curso de forma atómica. Si key ya existía devuelve
	// reserved=false y el id de la venta asociada, o "" si otra petición la tiene en curso.
	Reserve(ctx context.Context, key string) (saleID string, reserved bool, err error)
	// Save asocia key al id de la venta creada.
	Save(ctx context.Context, key, saleID string) error
	// Release libera una reserva cuya venta no se registró.
	Release(ctx context.Context, key string) error
}

// ReportRenderer genera la representación PDF de un reporte de ingresos.
type ReportRenderer interface {
	RevenueReportPDF(ctx context.Context, report *dto.RevenueReportDTO) ([]byte, error)
}
