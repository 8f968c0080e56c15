package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SaleAmount lo mínimo de una venta que necesita la agregación.
type SaleAmount struct {
	Date     time.Time
	Quantity int
	Amount   decimal.Decimal
}

// Bucket ventas agrupadas en un período. Nunca se emite con Orders == 0.
type Bucket struct {
	Start   time.Time
	End     time.Time
	Revenue decimal.Decimal
	Orders  int
	Units   int
}

// AverageOrderValue Revenue / Orders con precisión completa; redondear solo al presentar.
func (b Bucket) AverageOrderValue() decimal.Decimal {
	if b.Orders == 0 {
		return decimal.Zero
	}
	return b.Revenue.Div(decimal.NewFromInt(int64(b.Orders)))
}

// Aggregate agrupa ventas ya filtradas en buckets del período, ordenados por inicio ascendente.
func Aggregate(p Period, sales []SaleAmount) []Bucket {
	raw := make([]Bucket, 0, len(sales))
	for _, s := range sales {
		raw = append(raw, Bucket{Start: s.Date, Revenue: s.Amount, Orders: 1, Units: s.Quantity})
	}
	return Merge(p, raw)
}

// Merge normaliza el inicio de cada bucket al período, suma los que coinciden,
// descarta los vacíos, calcula End y ordena ascendente.
// Sirve tanto para ventas sueltas como para filas ya agrupadas por la base de datos.
func Merge(p Period, raw []Bucket) []Bucket {
	byStart := make(map[time.Time]*Bucket, len(raw))
	for _, r := range raw {
		if r.Orders <= 0 {
			continue
		}
		start := p.Truncate(r.Start)
		b, ok := byStart[start]
		if !ok {
			b = &Bucket{Start: start, End: p.End(start), Revenue: decimal.Zero}
			byStart[start] = b
		}
		b.Revenue = b.Revenue.Add(r.Revenue)
		b.Orders += r.Orders
		b.Units += r.Units
	}

	out := make([]Bucket, 0, len(byStart))
	for _, b := range byStart {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Totals suma ingresos y órdenes de todos los buckets.
func Totals(buckets []Bucket) (revenue decimal.Decimal, orders int) {
	revenue = decimal.Zero
	for _, b := range buckets {
		revenue = revenue.Add(b.Revenue)
		orders += b.Orders
	}
	return revenue, orders
}
