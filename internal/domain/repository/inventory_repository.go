package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// InventoryRepository puerto de persistencia del inventario (una fila por producto).
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	// GetByProduct devuelve (nil, nil) si el producto no tiene inventario.
	GetByProduct(ctx context.Context, productID string) (*entity.Inventory, error)
	// GetForUpdate igual que GetByProduct pero bloquea la fila (SELECT ... FOR UPDATE). Solo dentro de una tx.
	GetForUpdate(ctx context.Context, productID string) (*entity.Inventory, error)
	// Update persiste cantidad y umbral; actualiza last_updated.
	Update(ctx context.Context, inv *entity.Inventory) error
	List(ctx context.Context, f filter.Inventory, page filter.Page) ([]*entity.InventoryItem, int, error)
}
