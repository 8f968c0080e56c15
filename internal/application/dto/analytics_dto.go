package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueBucketDTO ingresos de un período. AverageOrderValue va redondeado a 2 decimales.
type RevenueBucketDTO struct {
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	TotalRevenue      decimal.Decimal `json:"total_revenue" swaggertype:"string"`
	OrderCount        int             `json:"order_count"`
	UnitsSold         int             `json:"units_sold"`
	AverageOrderValue decimal.Decimal `json:"average_order_value" swaggertype:"string"`
}

// RevenueReportDTO respuesta de GET /api/analytics/revenue/{period}.
// Los totales son la suma de los buckets.
type RevenueReportDTO struct {
	Period       string             `json:"period"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	CategoryID   string             `json:"category_id,omitempty"`
	Platform     string             `json:"platform,omitempty"`
	Buckets      []RevenueBucketDTO `json:"buckets"`
	TotalRevenue decimal.Decimal    `json:"total_revenue" swaggertype:"string"`
	OrderCount   int                `json:"order_count"`
}
