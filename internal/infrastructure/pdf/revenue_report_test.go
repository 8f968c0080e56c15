package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/pdf"
)

func TestMoney(t *testing.T) {
	g := pdf.NewMarotoReportRenderer()

	assert.Equal(t, "$1,234.50", g.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", g.Money(decimal.Zero))
	assert.Equal(t, "$999.99", g.Money(decimal.RequireFromString("999.99")))
	assert.Equal(t, "$1,000.00", g.Money(decimal.RequireFromString("1000")))
	assert.Equal(t, "$12,345,678.90", g.Money(decimal.RequireFromString("12345678.9")))
	assert.Equal(t, "-$1,234.57", g.Money(decimal.RequireFromString("-1234.567")))
	assert.Equal(t, "$0.01", g.Money(decimal.RequireFromString("0.005")))
	assert.Equal(t, "$90,071,992,547,409.93", g.Money(decimal.RequireFromString("90071992547409.93")), "sin redondeo de float64")
}

func TestRevenueReportPDF(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	report := &dto.RevenueReportDTO{
		Period:    "monthly",
		StartDate: start,
		EndDate:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		Buckets: []dto.RevenueBucketDTO{{
			PeriodStart:       start,
			PeriodEnd:         time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
			TotalRevenue:      decimal.NewFromInt(30),
			OrderCount:        2,
			UnitsSold:         3,
			AverageOrderValue: decimal.NewFromInt(15),
		}},
		TotalRevenue: decimal.NewFromInt(30),
		OrderCount:   2,
	}

	out, err := pdf.NewMarotoReportRenderer().RevenueReportPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRevenueReportPDF_SinBuckets(t *testing.T) {
	out, err := pdf.NewMarotoReportRenderer().RevenueReportPDF(context.Background(), &dto.RevenueReportDTO{Period: "daily"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
