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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (id, product_id, quantity, low_stock_threshold, last_updated)
		VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.ProductID, inv.Quantity, inv.LowStockThreshold, inv.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageErr("inventory.Create", err)
	}
	return nil
}

// GetByProduct obtiene el inventario de un producto. (nil, nil) si no existe.
func (r *InventoryRepo) GetByProduct(ctx context.Context, productID string) (*entity.Inventory, error) {
	return r.get(ctx, "inventory.GetByProduct", "", productID)
}

// GetForUpdate obtiene el inventario y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID string) (*entity.Inventory, error) {
	return r.get(ctx, "inventory.GetForUpdate", " FOR UPDATE", productID)
}

func (r *InventoryRepo) get(ctx context.Context, op, lock, productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, low_stock_threshold, last_updated
		FROM inventory WHERE product_id = $1` + lock
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &inv, nil
}

// Update persiste cantidad, umbral y last_updated.
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory SET quantity = $2, low_stock_threshold = $3, last_updated = $4
		WHERE product_id = $1`,
		inv.ProductID, inv.Quantity, inv.LowStockThreshold, inv.LastUpdated,
	)
	if err != nil {
		return storageErr("inventory.Update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista inventario con su producto, ordenado por (p.created_at, p.id).
func (r *InventoryRepo) List(ctx context.Context, f filter.Inventory, page filter.Page) ([]*entity.InventoryItem, int, error) {
	const from = ` FROM inventory i JOIN products p ON p.id = i.product_id`
	c := inventoryClauses(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+from+c.where(), c.args...).Scan(&total); err != nil {
		return nil, 0, storageErr("inventory.Count", err)
	}

	query := `SELECT i.id, i.product_id, i.quantity, i.low_stock_threshold, i.last_updated, ` + productColumns +
		from + c.where() + c.orderPage(orderInventory, page)
	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, 0, storageErr("inventory.List", err)
	}
	defer rows.Close()

	list := make([]*entity.InventoryItem, 0, page.Limit)
	for rows.Next() {
		var it entity.InventoryItem
		p := &it.Product
		if err := rows.Scan(
			&it.ID, &it.ProductID, &it.Quantity, &it.LowStockThreshold, &it.LastUpdated,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.SKU, &p.CategoryID,
			&p.Platform, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, storageErr("inventory.List scan", err)
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageErr("inventory.List rows", err)
	}
	return list, total, nil
}
