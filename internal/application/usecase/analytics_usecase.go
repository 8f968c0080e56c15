package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/analytics"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// DefaultRevenueWindow ventana usada cuando no se indica start_date.
const DefaultRevenueWindow = 30 * 24 * time.Hour

// AnalyticsUseCase reporte de ingresos por período:
//   - Rango por defecto: últimos 30 días.
//   - Agregación con date_trunc en la BD, normalizada con analytics.Merge.
//   - Redondeo a 2 decimales solo al construir el DTO.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	renderer      ports.ReportRenderer
	now           func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. renderer puede ser nil si no se exporta a PDF.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, renderer ports.ReportRenderer) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, renderer: renderer, now: time.Now}
}

// WithClock reemplaza el reloj usado para el rango por defecto.
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// RevenueReport agrega las ventas filtradas en buckets del período indicado.
func (uc *AnalyticsUseCase) RevenueReport(
	ctx context.Context,
	period string,
	f filter.Revenue,
) (*dto.RevenueReportDTO, error) {
	p, err := analytics.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.Dates = uc.window(f.Dates)
	if err := f.Dates.Validate(); err != nil {
		return nil, err
	}
	if p.BucketCount(*f.Dates.Start, *f.Dates.End) > analytics.MaxBuckets {
		return nil, domain.Invalid("start_date", "el rango produce más de 1000 períodos")
	}

	raw, err := uc.analyticsRepo.RevenueBuckets(ctx, p, f)
	if err != nil {
		return nil, err
	}
	return toRevenueReport(p, f, analytics.Merge(p, raw)), nil
}

// RevenueReportPDF mismo reporte que RevenueReport, renderizado en PDF.
func (uc *AnalyticsUseCase) RevenueReportPDF(
	ctx context.Context,
	period string,
	f filter.Revenue,
) ([]byte, *dto.RevenueReportDTO, error) {
	if uc.renderer == nil {
		return nil, nil, errors.New("reporte PDF no configurado")
	}
	report, err := uc.RevenueReport(ctx, period, f)
	if err != nil {
		return nil, nil, err
	}
	doc, err := uc.renderer.RevenueReportPDF(ctx, report)
	if err != nil {
		return nil, nil, err
	}
	return doc, report, nil
}

// window completa los extremos ausentes: fin = ahora, inicio = fin - 30 días.
func (uc *AnalyticsUseCase) window(r filter.DateRange) filter.DateRange {
	if r.End == nil {
		end := uc.now().UTC()
		r.End = &end
	}
	if r.Start == nil {
		start := r.End.Add(-DefaultRevenueWindow)
		r.Start = &start
	}
	return r
}

func toRevenueReport(p analytics.Period, f filter.Revenue, buckets []analytics.Bucket) *dto.RevenueReportDTO {
	items := make([]dto.RevenueBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, dto.RevenueBucketDTO{
			PeriodStart:       b.Start,
			PeriodEnd:         b.End,
			TotalRevenue:      b.Revenue.Round(2),
			OrderCount:        b.Orders,
			UnitsSold:         b.Units,
			AverageOrderValue: b.AverageOrderValue().Round(2),
		})
	}
	revenue, orders := analytics.Totals(buckets)
	return &dto.RevenueReportDTO{
		Period:       string(p),
		StartDate:    *f.Dates.Start,
		EndDate:      *f.Dates.End,
		CategoryID:   f.CategoryID,
		Platform:     f.Platform,
		Buckets:      items,
		TotalRevenue: revenue.Round(2),
		OrderCount:   orders,
	}
}
