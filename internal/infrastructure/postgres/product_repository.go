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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.name, p.description, p.price, p.sku, p.category_id, p.platform, p.is_active, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SKU, &p.CategoryID,
		&p.Platform, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

// Create persiste un nuevo producto. SKU duplicado -> domain.ErrDuplicate; categoría inexistente -> domain.ErrNotFound.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, sku, category_id, platform, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.SKU, p.CategoryID,
		p.Platform, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return storageErr("product.Create", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "product.GetByID", `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, "product.GetBySKU", `SELECT `+productColumns+` FROM products p WHERE p.sku = $1`, sku)
}

func (r *ProductRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, arg), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &p, nil
}

// Update actualiza los campos editables. El SKU no cambia.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, platform = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.Platform, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return storageErr("product.Update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos filtrados, ordenados por (created_at, id).
func (r *ProductRepo) List(ctx context.Context, f filter.Products, page filter.Page) ([]*entity.Product, int, error) {
	c := productClauses(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+c.where(), c.args...).Scan(&total); err != nil {
		return nil, 0, storageErr("product.Count", err)
	}

	query := `SELECT ` + productColumns + ` FROM products p` + c.where() +
		c.orderPage(orderProducts, page)
	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, 0, storageErr("product.List", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0, page.Limit)
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, storageErr("product.List scan", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageErr("product.List rows", err)
	}
	return list, total, nil
}
