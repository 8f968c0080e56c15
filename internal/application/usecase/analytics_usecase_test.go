package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// fakeAnalyticsRepo agrupa por día como lo haría date_trunc('day') y registra el filtro recibido.
type fakeAnalyticsRepo struct {
	sales []analytics.SaleAmount
	got   filter.Revenue
	calls int
}

func (r *fakeAnalyticsRepo) RevenueBuckets(_ context.Context, _ analytics.Period, f filter.Revenue) ([]analytics.Bucket, error) {
	r.calls++
	r.got = f
	var in []analytics.SaleAmount
	for _, s := range r.sales {
		if f.Dates.Contains(s.Date) {
			in = append(in, s)
		}
	}
	return analytics.Aggregate(analytics.Daily, in), nil
}

func (r *fakeAnalyticsRepo) SalesMetrics(context.Context, time.Time, time.Time) (decimal.Decimal, int, error) {
	return decimal.Zero, 0, nil
}

func (r *fakeAnalyticsRepo) TopProducts(context.Context, time.Time, time.Time, int) ([]repository.TopProductResult, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) CountLowStock(context.Context) (int, error) { return 0, nil }

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRevenueReport_EjemploMensual(t *testing.T) {
	repo := &fakeAnalyticsRepo{sales: []analytics.SaleAmount{
		{Date: time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.NewFromInt(10)},
		{Date: time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.NewFromInt(20)},
		{Date: time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.NewFromInt(30)},
	}}
	uc := usecase.NewAnalyticsUseCase(repo, nil)

	report, err := uc.RevenueReport(context.Background(), "monthly", filter.Revenue{
		Dates: filter.DateRange{Start: at(2024, 1, 1), End: at(2024, 2, 29)},
	})
	require.NoError(t, err)
	require.Len(t, report.Buckets, 2)

	jan, feb := report.Buckets[0], report.Buckets[1]
	assert.Equal(t, *at(2024, 1, 1), jan.PeriodStart)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), jan.PeriodEnd)
	assert.Equal(t, "30", jan.TotalRevenue.String())
	assert.Equal(t, 2, jan.OrderCount)
	assert.Equal(t, "15", jan.AverageOrderValue.String())

	assert.Equal(t, *at(2024, 2, 1), feb.PeriodStart)
	assert.Equal(t, "30", feb.TotalRevenue.String())
	assert.Equal(t, 1, feb.OrderCount)
	assert.Equal(t, "30", feb.AverageOrderValue.String())

	assert.Equal(t, "60", report.TotalRevenue.String())
	assert.Equal(t, 3, report.OrderCount)
}

func TestRevenueReport_AOVRedondeadoAlPresentar(t *testing.T) {
	repo := &fakeAnalyticsRepo{sales: []analytics.SaleAmount{
		{Date: time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.NewFromInt(10)},
		{Date: time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.Zero},
		{Date: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.Zero},
	}}
	report, err := usecase.NewAnalyticsUseCase(repo, nil).RevenueReport(context.Background(), "daily", filter.Revenue{
		Dates: filter.DateRange{Start: at(2024, 3, 1), End: at(2024, 3, 2)},
	})
	require.NoError(t, err)
	require.Len(t, report.Buckets, 1)
	assert.Equal(t, "3.33", report.Buckets[0].AverageOrderValue.String())
}

func TestRevenueReport_VentanaPorDefectoDe30Dias(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	uc := usecase.NewAnalyticsUseCase(repo, nil).WithClock(func() time.Time { return now })

	report, err := uc.RevenueReport(context.Background(), "weekly", filter.Revenue{Platform: "Amazon"})
	require.NoError(t, err)

	assert.Equal(t, now, *repo.got.Dates.End)
	assert.Equal(t, now.Add(-30*24*time.Hour), *repo.got.Dates.Start)
	assert.Equal(t, "Amazon", repo.got.Platform)
	assert.Empty(t, report.Buckets)
	assert.NotNil(t, report.Buckets, "lista vacía, no null")
	assert.True(t, report.TotalRevenue.IsZero())
}

func TestRevenueReport_Errores(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := usecase.NewAnalyticsUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.RevenueReport(ctx, "hourly", filter.Revenue{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RevenueReport(ctx, "daily", filter.Revenue{
		Dates: filter.DateRange{Start: at(2024, 2, 1), End: at(2024, 1, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RevenueReport(ctx, "daily", filter.Revenue{
		Dates: filter.DateRange{Start: at(2020, 1, 1), End: at(2024, 1, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "más de 1000 buckets diarios")

	// futuro start sin end: end = ahora < start
	_, err = uc.RevenueReport(ctx, "daily", filter.Revenue{
		Dates: filter.DateRange{Start: at(2999, 1, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, repo.calls, "la validación precede a la consulta")

	_, err = uc.RevenueReport(ctx, "annual", filter.Revenue{
		Dates: filter.DateRange{Start: at(2020, 1, 1), End: at(2024, 1, 1)},
	})
	assert.NoError(t, err, "el mismo rango en años es válido")
}

type fakeRenderer struct{ got *dto.RevenueReportDTO }

func (r *fakeRenderer) RevenueReportPDF(_ context.Context, report *dto.RevenueReportDTO) ([]byte, error) {
	r.got = report
	return []byte("%PDF-1.3"), nil
}

func TestRevenueReportPDF_UsaElMismoReporte(t *testing.T) {
	repo := &fakeAnalyticsRepo{sales: []analytics.SaleAmount{
		{Date: time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), Quantity: 1, Amount: decimal.NewFromInt(10)},
	}}
	renderer := &fakeRenderer{}
	uc := usecase.NewAnalyticsUseCase(repo, renderer)

	doc, report, err := uc.RevenueReportPDF(context.Background(), "annual", filter.Revenue{
		Dates: filter.DateRange{Start: at(2024, 1, 1), End: at(2024, 12, 31)},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(doc))
	assert.Same(t, report, renderer.got)
	require.Len(t, report.Buckets, 1)

	_, _, err = usecase.NewAnalyticsUseCase(repo, nil).RevenueReportPDF(context.Background(), "daily", filter.Revenue{})
	assert.Error(t, err)
}
