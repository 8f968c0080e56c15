// Package analytics contiene las reglas puras de la analítica de ingresos:
// truncado de fechas por período y agregación por bucket.
//
// Todas las fechas se normalizan a UTC. Las semanas empiezan el lunes (ISO 8601).
package analytics

import (
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// Period granularidad de agregación.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Annual  Period = "annual"
)

// MaxBuckets tope de buckets que puede producir una consulta.
const MaxBuckets = 1000

// ParsePeriod valida el período; cualquier otro valor es un error de validación.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Weekly, Monthly, Annual:
		return p, nil
	}
	return "", domain.Invalid("period", "debe ser daily, weekly, monthly o annual")
}

// Truncate devuelve el inicio del bucket que contiene t.
func (p Period) Truncate(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case Weekly:
		sinceMonday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -sinceMonday)
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Annual:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// Next devuelve el inicio del bucket siguiente a start.
func (p Period) Next(start time.Time) time.Time {
	switch p {
	case Weekly:
		return start.AddDate(0, 0, 7)
	case Monthly:
		return start.AddDate(0, 1, 0)
	case Annual:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// End último instante (al segundo) del bucket que empieza en start.
func (p Period) End(start time.Time) time.Time {
	return p.Next(start).Add(-time.Second)
}

// SQLUnit unidad equivalente para date_trunc de PostgreSQL ('week' también es lunes ISO).
func (p Period) SQLUnit() string {
	switch p {
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Annual:
		return "year"
	default:
		return "day"
	}
}

// BucketCount número de buckets que toca el rango [start, end]. Se detiene en MaxBuckets+1.
func (p Period) BucketCount(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	n := 0
	for b := p.Truncate(start); !b.After(end) && n <= MaxBuckets; b = p.Next(b) {
		n++
	}
	return n
}
