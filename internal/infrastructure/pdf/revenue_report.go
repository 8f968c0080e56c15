// Package pdf genera el reporte de ingresos por período en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período      │  Rango de fechas           │
//	│  FILTROS: categoría / plataforma                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Inicio | Fin | Ventas | Unidades | Ingresos | Ticket │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ventas / ingresos                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
)

var _ ports.ReportRenderer = (*MarotoReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "2006-01-02"

// MarotoReportRenderer implementa ports.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	printer *message.Printer
}

// NewMarotoReportRenderer construye el generador. Los montos se formatean en inglés de EE.UU.
func NewMarotoReportRenderer() *MarotoReportRenderer {
	return &MarotoReportRenderer{printer: message.NewPrinter(language.AmericanEnglish)}
}

// RevenueReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) RevenueReportPDF(_ context.Context, report *dto.RevenueReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Revenue report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filtersRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.bucketRows(report.Buckets)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// Money formatea un monto con separador de miles y dos decimales, ej: "$1,234.50".
// Parte de StringFixed para no pasar por float64.
func (g *MarotoReportRenderer) Money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign + "$")
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	b.WriteString("." + frac)
	return b.String()
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.RevenueReportDTO) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Revenue report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Period: "+report.Period, props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(report.StartDate.Format(dateLayout)+" to "+report.EndDate.Format(dateLayout), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
		),
	)
}

func filtersRow(report *dto.RevenueReportDTO) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Category: %s   |   Platform: %s",
			nonEmpty(report.CategoryID, "all"),
			nonEmpty(report.Platform, "all"),
		), props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Start", 2, align.Left),
		h("End", 2, align.Left),
		h("Orders", 2, align.Right),
		h("Units", 2, align.Right),
		h("Revenue", 2, align.Right),
		h("Avg. order", 2, align.Right),
	)
}

func (g *MarotoReportRenderer) bucketRows(buckets []dto.RevenueBucketDTO) []core.Row {
	if len(buckets) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("No sales in the selected range.", props.Text{Size: 8, Top: 1, Color: colorGray}),
		))}
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	rows := make([]core.Row, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, row.New(6).Add(
			cell(b.PeriodStart.Format(dateLayout), 2, align.Left),
			cell(b.PeriodEnd.Format(dateLayout), 2, align.Left),
			cell(g.printer.Sprint(b.OrderCount), 2, align.Right),
			cell(g.printer.Sprint(b.UnitsSold), 2, align.Right),
			cell(g.Money(b.TotalRevenue), 2, align.Right),
			cell(g.Money(b.AverageOrderValue), 2, align.Right),
		))
	}
	return rows
}

func (g *MarotoReportRenderer) totalsRow(report *dto.RevenueReportDTO) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(g.printer.Sprintf("Orders: %d", report.OrderCount), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(6).Add(text.New("Total revenue: "+g.Money(report.TotalRevenue), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
