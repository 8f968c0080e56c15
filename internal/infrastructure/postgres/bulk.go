package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// Copier lo implementan pgx.Tx, pgx.Conn y pgxpool.Pool.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var saleCopyColumns = []string{
	"id", "product_id", "quantity", "unit_price", "total_amount", "sale_date", "platform", "order_id", "created_at",
}

// CopySales inserta ventas en bloque con COPY. No toca el inventario: es para cargas históricas.
func CopySales(ctx context.Context, q Copier, sales []entity.Sale) (int64, error) {
	rows := make([][]any, 0, len(sales))
	for i := range sales {
		s := &sales[i]
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return 0, fmt.Errorf("sale.Copy: id %q: %w", s.ID, err)
		}
		productID, err := uuid.Parse(s.ProductID)
		if err != nil {
			return 0, fmt.Errorf("sale.Copy: product_id %q: %w", s.ProductID, err)
		}
		rows = append(rows, []any{
			id, productID, int32(s.Quantity), s.UnitPrice, s.TotalAmount, s.SaleDate, s.Platform, s.OrderID, s.CreatedAt,
		})
	}
	n, err := q.CopyFrom(ctx, pgx.Identifier{"sales"}, saleCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, storageErr("sale.Copy", err)
	}
	return n, nil
}
