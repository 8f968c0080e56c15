package analytics_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/analytics"
	domainanalytics "github.com/jhoicas/ecommerce-admin-api/internal/domain/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

type metricsCall struct{ start, end time.Time }

type stubRepo struct {
	mu       sync.Mutex
	calls    []metricsCall
	top      []repository.TopProductResult
	lowStock int
	err      error
}

func (s *stubRepo) RevenueBuckets(context.Context, domainanalytics.Period, filter.Revenue) ([]domainanalytics.Bucket, error) {
	return nil, nil
}

func (s *stubRepo) SalesMetrics(_ context.Context, start, end time.Time) (decimal.Decimal, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, metricsCall{start, end})
	if start.Day() == 1 {
		return decimal.RequireFromString("1234.567"), 40, nil
	}
	return decimal.RequireFromString("99.994"), 3, nil
}

func (s *stubRepo) TopProducts(context.Context, time.Time, time.Time, int) ([]repository.TopProductResult, error) {
	return s.top, nil
}

func (s *stubRepo) CountLowStock(context.Context) (int, error) { return s.lowStock, s.err }

func TestDashboard_GetSummary(t *testing.T) {
	repo := &stubRepo{
		top:      []repository.TopProductResult{{ProductID: "p1", SKU: "SKU-1", ProductName: "Uno", UnitsSold: 7, Revenue: decimal.RequireFromString("70.005")}},
		lowStock: 4,
	}
	now := time.Date(2026, 2, 14, 15, 30, 0, 0, time.UTC)
	uc := analytics.NewDashboardUseCase(repo).WithClock(func() time.Time { return now })

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "99.99", got.TodayRevenue.String())
	assert.Equal(t, 3, got.TodayOrders)
	assert.Equal(t, "1234.57", got.MonthRevenue.String())
	assert.Equal(t, 40, got.MonthOrders)
	assert.Equal(t, 4, got.LowStockCount)
	require.Len(t, got.TopProducts, 1)
	assert.Equal(t, "70.01", got.TopProducts[0].Revenue.String())
	assert.Equal(t, "Febrero 2026", got.DateLabel)

	tomorrow := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.ElementsMatch(t, []metricsCall{
		{time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), tomorrow},
		{time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), tomorrow},
	}, repo.calls)
}

func TestDashboard_PropagaErrores(t *testing.T) {
	repo := &stubRepo{err: errors.New("db caída")}

	_, err := analytics.NewDashboardUseCase(repo).GetSummary(context.Background())
	assert.ErrorContains(t, err, "stock bajo")
}
