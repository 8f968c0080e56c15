package postgres

import (
	"strconv"
	"strings"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// clauses acumula condiciones AND con sus argumentos posicionales ($1, $2, ...).
type clauses struct {
	conds []string
	args  []any
}

// bind registra v como argumento y devuelve su placeholder.
func (c *clauses) bind(v any) string {
	c.args = append(c.args, v)
	return "$" + strconv.Itoa(len(c.args))
}

func (c *clauses) and(cond string) {
	c.conds = append(c.conds, cond)
}

// where devuelve " WHERE a AND b" o "" si no hay condiciones.
func (c *clauses) where() string {
	if len(c.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.conds, " AND ")
}

// paginate agrega LIMIT/OFFSET como argumentos.
func (c *clauses) paginate(page filter.Page) string {
	return " LIMIT " + c.bind(page.Limit) + " OFFSET " + c.bind(page.Offset)
}

// Orden de los listados. Todos terminan en id para que las páginas no se solapen.
const (
	orderCategories = "name, id"
	orderProducts   = "p.created_at, p.id"
	orderInventory  = "p.created_at, p.id"
	orderSales      = "s.sale_date DESC, s.id"
)

// orderPage agrega ORDER BY y LIMIT/OFFSET.
func (c *clauses) orderPage(order string, page filter.Page) string {
	return " ORDER BY " + order + c.paginate(page)
}

const lowStockCond = "i.quantity <= i.low_stock_threshold"

// productClauses filtros de producto sobre el alias p.
func productClauses(f filter.Products) *clauses {
	c := &clauses{}
	if f.CategoryID != "" {
		c.and("p.category_id = " + c.bind(f.CategoryID))
	}
	if f.Platform != "" {
		c.and("p.platform = " + c.bind(f.Platform))
	}
	if f.IsActive != nil {
		c.and("p.is_active = " + c.bind(*f.IsActive))
	}
	if f.LowStockOnly {
		c.and("EXISTS (SELECT 1 FROM inventory i WHERE i.product_id = p.id AND " + lowStockCond + ")")
	}
	return c
}

// inventoryClauses filtros de inventario sobre i (inventory) y p (products).
func inventoryClauses(f filter.Inventory) *clauses {
	c := &clauses{}
	if f.CategoryID != "" {
		c.and("p.category_id = " + c.bind(f.CategoryID))
	}
	if f.Platform != "" {
		c.and("p.platform = " + c.bind(f.Platform))
	}
	if f.IsActive != nil {
		c.and("p.is_active = " + c.bind(*f.IsActive))
	}
	if f.LowStockOnly {
		c.and(lowStockCond)
	}
	if maxQty := f.EffectiveMaxQuantity(); maxQty != nil {
		c.and("i.quantity <= " + c.bind(*maxQty))
	}
	return c
}

// dateClauses rango inclusivo sobre column.
func dateClauses(c *clauses, column string, r filter.DateRange) {
	if r.Start != nil {
		c.and(column + " >= " + c.bind(*r.Start))
	}
	if r.End != nil {
		c.and(column + " <= " + c.bind(*r.End))
	}
}

// saleClauses filtros de ventas sobre s (sales) y p (products).
func saleClauses(f filter.Sales) *clauses {
	c := &clauses{}
	dateClauses(c, "s.sale_date", f.Dates)
	if f.ProductID != "" {
		c.and("s.product_id = " + c.bind(f.ProductID))
	}
	if f.CategoryID != "" {
		c.and("p.category_id = " + c.bind(f.CategoryID))
	}
	if f.Platform != "" {
		c.and("s.platform = " + c.bind(f.Platform))
	}
	return c
}

// revenueClauses filtros de la analítica de ingresos; mismas columnas que saleClauses.
func revenueClauses(f filter.Revenue) *clauses {
	return saleClauses(filter.Sales{Dates: f.Dates, CategoryID: f.CategoryID, Platform: f.Platform})
}
