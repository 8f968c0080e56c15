package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// SaleRepository puerto de persistencia de ventas. Las ventas no se modifican tras crearse.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List ordena por sale_date DESC, id.
	List(ctx context.Context, f filter.Sales, page filter.Page) ([]*entity.Sale, int, error)
}
