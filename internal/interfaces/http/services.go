package http

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

// Puertos de entrada consumidos por los handlers. Los implementan los casos de uso.

type CategoryService interface {
	Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, page filter.Page) (*dto.CategoryListResponse, error)
}

type ProductService interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context, f filter.Products, page filter.Page) (*dto.ProductListResponse, error)
}

type InventoryService interface {
	Update(ctx context.Context, productID string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	List(ctx context.Context, f filter.Inventory, page filter.Page) (*dto.InventoryListResponse, error)
}

type SaleService interface {
	Create(ctx context.Context, idempotencyKey string, in dto.CreateSaleRequest) (*dto.SaleResponse, bool, error)
	GetByID(ctx context.Context, id string) (*dto.SaleResponse, error)
	List(ctx context.Context, f filter.Sales, page filter.Page) (*dto.SaleListResponse, error)
}

type AnalyticsService interface {
	RevenueReport(ctx context.Context, period string, f filter.Revenue) (*dto.RevenueReportDTO, error)
	RevenueReportPDF(ctx context.Context, period string, f filter.Revenue) ([]byte, *dto.RevenueReportDTO, error)
}

type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// Pinger verifica la conectividad con la base de datos (pgxpool.Pool lo cumple).
type Pinger interface {
	Ping(ctx context.Context) error
}
