package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `s.id, s.product_id, s.quantity, s.unit_price, s.total_amount, s.sale_date, s.platform, s.order_id, s.created_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row, s *entity.Sale) error {
	return row.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.TotalAmount,
		&s.SaleDate, &s.Platform, &s.OrderID, &s.CreatedAt)
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, product_id, quantity, unit_price, total_amount, sale_date, platform, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.ProductID, s.Quantity, s.UnitPrice, s.TotalAmount, s.SaleDate, s.Platform, s.OrderID, s.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return storageErr("sale.Create", err)
	}
	return nil
}

// GetByID obtiene una venta. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales s WHERE s.id = $1`, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("sale.GetByID", err)
	}
	return &s, nil
}

// List lista ventas filtradas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, f filter.Sales, page filter.Page) ([]*entity.Sale, int, error) {
	const from = ` FROM sales s JOIN products p ON p.id = s.product_id`
	c := saleClauses(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+from+c.where(), c.args...).Scan(&total); err != nil {
		return nil, 0, storageErr("sale.Count", err)
	}

	query := `SELECT ` + saleColumns + from + c.where() + c.orderPage(orderSales, page)
	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, 0, storageErr("sale.List", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0, page.Limit)
	for rows.Next() {
		var s entity.Sale
		if err := scanSale(rows, &s); err != nil {
			return nil, 0, storageErr("sale.List scan", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageErr("sale.List rows", err)
	}
	return list, total, nil
}
