package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/analytics/summary.
// KPIs del día y del mes en curso (UTC), Top-5 productos del mes y alertas de stock.
type DashboardSummaryDTO struct {
	TodayRevenue decimal.Decimal `json:"today_revenue" swaggertype:"string"`
	TodayOrders  int             `json:"today_orders"`

	MonthRevenue decimal.Decimal `json:"month_revenue" swaggertype:"string"`
	MonthOrders  int             `json:"month_orders"`

	TopProducts   []TopProductDTO `json:"top_products"`
	LowStockCount int             `json:"low_stock_count"`

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue" swaggertype:"string"`
}
