package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para la analítica de ventas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// RevenueBuckets agrupa ingresos, ventas y unidades por bucket del período.
// date_trunc se aplica sobre la fecha en UTC; 'week' de PostgreSQL empieza el lunes.
func (r *AnalyticsRepo) RevenueBuckets(
	ctx context.Context,
	period analytics.Period,
	f filter.Revenue,
) ([]analytics.Bucket, error) {
	c := revenueClauses(f)
	unit := c.bind(period.SQLUnit())

	query := `
	SELECT
	    date_trunc(` + unit + `, s.sale_date AT TIME ZONE 'UTC') AS bucket,
	    SUM(s.total_amount)                                     AS revenue,
	    COUNT(*)                                                AS orders,
	    SUM(s.quantity)                                         AS units
	FROM sales s
	JOIN products p ON p.id = s.product_id` + c.where() + `
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, c.args...)
	if err != nil {
		return nil, storageErr("analytics.RevenueBuckets", err)
	}
	defer rows.Close()

	var results []analytics.Bucket
	for rows.Next() {
		var b analytics.Bucket
		if err := rows.Scan(&b.Start, &b.Revenue, &b.Orders, &b.Units); err != nil {
			return nil, storageErr("analytics.RevenueBuckets scan", err)
		}
		b.Start = b.Start.UTC()
		results = append(results, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("analytics.RevenueBuckets rows", err)
	}
	return results, nil
}

// SalesMetrics ingresos y número de ventas en [start, end).
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) SalesMetrics(
	ctx context.Context,
	start, end time.Time,
) (revenue decimal.Decimal, orders int, err error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
	FROM sales
	WHERE sale_date >= $1 AND sale_date < $2`

	if err = r.pool.QueryRow(ctx, query, start, end).Scan(&revenue, &orders); err != nil {
		return decimal.Zero, 0, storageErr("analytics.SalesMetrics", err)
	}
	return revenue, orders, nil
}

// TopProducts devuelve los `limit` productos con mayor ingreso en [start, end).
func (r *AnalyticsRepo) TopProducts(
	ctx context.Context,
	start, end time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.sku,
	    p.name,
	    SUM(s.quantity)     AS units_sold,
	    SUM(s.total_amount) AS revenue
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.sale_date >= $1 AND s.sale_date < $2
	GROUP BY p.id, p.sku, p.name
	ORDER BY revenue DESC, p.id
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, storageErr("analytics.TopProducts", err)
	}
	defer rows.Close()

	results := []repository.TopProductResult{}
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, storageErr("analytics.TopProducts scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("analytics.TopProducts rows", err)
	}
	return results, nil
}

// CountLowStock número de productos con stock en o bajo su umbral.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory i WHERE `+lowStockCond,
	).Scan(&n); err != nil {
		return 0, storageErr("analytics.CountLowStock", err)
	}
	return n, nil
}
