// Package analytics contiene los casos de uso del dashboard de ventas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen del día y del mes en curso (UTC).
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. SalesMetrics(hoy)        → TodayRevenue + TodayOrders
//  2. SalesMetrics(mes)        → MonthRevenue + MonthOrders
//  3. TopProducts(mes, top 5)  → TopProducts
//  4. CountLowStock            → LowStockCount
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now().UTC()

	// Rangos semiabiertos [inicio, fin)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	type metricsResult struct {
		revenue decimal.Decimal
		orders  int
		err     error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}
	type countResult struct {
		n   int
		err error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan countResult, 1)

	go func() {
		rev, n, err := uc.analyticsRepo.SalesMetrics(ctx, todayStart, tomorrow)
		todayCh <- metricsResult{rev, n, err}
	}()
	go func() {
		rev, n, err := uc.analyticsRepo.SalesMetrics(ctx, monthStart, tomorrow)
		monthCh <- metricsResult{rev, n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.TopProducts(ctx, monthStart, tomorrow, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx)
		lowCh <- countResult{n, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	low := <-lowCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	products := make([]dto.TopProductDTO, 0, len(top.rows))
	for _, r := range top.rows {
		products = append(products, dto.TopProductDTO{
			ProductID:   r.ProductID,
			SKU:         r.SKU,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue:  today.revenue.Round(2),
		TodayOrders:   today.orders,
		MonthRevenue:  month.revenue.Round(2),
		MonthOrders:   month.orders,
		TopProducts:   products,
		LowStockCount: low.n,
		DateLabel:     monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
