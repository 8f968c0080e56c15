// Package filter define los filtros opcionales y la paginación de los listados.
// Cada filtro presente restringe el resultado (AND); los ausentes no imponen nada.
// La traducción a SQL vive en el adaptador de PostgreSQL.
package filter

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

const dateLayout = "2006-01-02"

// Page paginación offset/limit.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage primera página con el límite por defecto.
func DefaultPage() Page { return Page{Limit: DefaultLimit} }

// Validate exige 0 < Limit <= MaxLimit y Offset >= 0.
func (p Page) Validate() error {
	if p.Limit <= 0 {
		return domain.Invalid("limit", "debe ser mayor que 0")
	}
	if p.Limit > MaxLimit {
		return domain.Invalid("limit", "no puede superar 1000")
	}
	if p.Offset < 0 {
		return domain.Invalid("offset", "no puede ser negativo")
	}
	return nil
}

// DateRange rango inclusivo; cualquiera de los extremos puede faltar.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Validate falla si Start es posterior a End.
func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return domain.Invalid("start_date", "no puede ser posterior a end_date")
	}
	return nil
}

// Contains indica si t cae dentro del rango (extremos incluidos).
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// ParseDate acepta YYYY-MM-DD o RFC3339. Con endOfDay una fecha sin hora cubre el día completo.
// Cadena vacía devuelve nil.
func ParseDate(field, s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, domain.Invalid(field, "formato esperado YYYY-MM-DD o RFC3339")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// Products filtros del listado de productos.
type Products struct {
	CategoryID   string
	Platform     string
	IsActive     *bool
	LowStockOnly bool
}

// Validate verifica los identificadores.
func (f Products) Validate() error {
	return validID("category_id", f.CategoryID)
}

// Inventory filtros del listado de inventario.
// MaxQuantity se ignora cuando LowStockOnly está activo.
type Inventory struct {
	CategoryID   string
	Platform     string
	IsActive     *bool
	LowStockOnly bool
	MaxQuantity  *int
}

// Validate verifica identificadores y cantidades.
func (f Inventory) Validate() error {
	if err := validID("category_id", f.CategoryID); err != nil {
		return err
	}
	if f.MaxQuantity != nil && *f.MaxQuantity < 0 {
		return domain.Invalid("max_quantity", "no puede ser negativo")
	}
	return nil
}

// EffectiveMaxQuantity devuelve el tope de cantidad aplicable (nil si low_stock_only manda).
func (f Inventory) EffectiveMaxQuantity() *int {
	if f.LowStockOnly {
		return nil
	}
	return f.MaxQuantity
}

// Sales filtros del listado de ventas.
type Sales struct {
	Dates      DateRange
	ProductID  string
	CategoryID string
	Platform   string
}

// Validate verifica rango e identificadores.
func (f Sales) Validate() error {
	if err := f.Dates.Validate(); err != nil {
		return err
	}
	if err := validID("product_id", f.ProductID); err != nil {
		return err
	}
	return validID("category_id", f.CategoryID)
}

// Revenue filtros de la analítica de ingresos (sin low_stock_only).
type Revenue struct {
	Dates      DateRange
	CategoryID string
	Platform   string
}

// Validate verifica rango e identificadores.
func (f Revenue) Validate() error {
	if err := f.Dates.Validate(); err != nil {
		return err
	}
	return validID("category_id", f.CategoryID)
}

// ValidID verifica que id sea un UUID.
func ValidID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Invalid(field, "debe ser un UUID válido")
	}
	return nil
}

func validID(field, id string) error {
	if id == "" {
		return nil
	}
	return ValidID(field, id)
}
