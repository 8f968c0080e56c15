package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// TopProductResult fila cruda del ranking de productos por ingreso.
type TopProductResult struct {
	ProductID   string
	SKU         string
	ProductName string
	UnitsSold   int
	Revenue     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para analítica de ventas.
type AnalyticsRepository interface {
	// RevenueBuckets agrupa las ventas filtradas con date_trunc en UTC.
	// Devuelve filas crudas; el use case las normaliza con analytics.Merge.
	RevenueBuckets(ctx context.Context, period analytics.Period, f filter.Revenue) ([]analytics.Bucket, error)

	// SalesMetrics ingresos y número de ventas en [start, end). Cero si no hay filas.
	SalesMetrics(ctx context.Context, start, end time.Time) (revenue decimal.Decimal, orders int, err error)

	// TopProducts los `limit` productos con mayor ingreso en [start, end).
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)

	// CountLowStock número de filas de inventario con quantity <= low_stock_threshold.
	CountLowStock(ctx context.Context) (int, error)
}
