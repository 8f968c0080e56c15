package http_test

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

type stubCategories struct {
	create func(dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	page   filter.Page
}

func (s *stubCategories) Create(_ context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	return s.create(in)
}

func (s *stubCategories) List(_ context.Context, page filter.Page) (*dto.CategoryListResponse, error) {
	s.page = page
	return &dto.CategoryListResponse{Items: []dto.CategoryResponse{}, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

type stubProducts struct {
	err    error
	filter filter.Products
	page   filter.Page
	update dto.UpdateProductRequest
}

func (s *stubProducts) Create(_ context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ProductResponse{ID: "p-1", Name: in.Name, SKU: in.SKU, Price: in.Price}, nil
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*dto.ProductResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ProductResponse{ID: id}, nil
}

func (s *stubProducts) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	s.update = in
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ProductResponse{ID: id}, nil
}

func (s *stubProducts) List(_ context.Context, f filter.Products, page filter.Page) (*dto.ProductListResponse, error) {
	s.filter, s.page = f, page
	return &dto.ProductListResponse{Items: []dto.ProductResponse{}}, s.err
}

type stubInventory struct {
	err       error
	productID string
	update    dto.UpdateInventoryRequest
	filter    filter.Inventory
}

func (s *stubInventory) Update(_ context.Context, productID string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	s.productID, s.update = productID, in
	if s.err != nil {
		return nil, s.err
	}
	return &dto.InventoryResponse{ProductID: productID}, nil
}

func (s *stubInventory) List(_ context.Context, f filter.Inventory, _ filter.Page) (*dto.InventoryListResponse, error) {
	s.filter = f
	return &dto.InventoryListResponse{}, s.err
}

type stubSales struct {
	err      error
	replayed bool
	key      string
	in       dto.CreateSaleRequest
	filter   filter.Sales
}

func (s *stubSales) Create(_ context.Context, key string, in dto.CreateSaleRequest) (*dto.SaleResponse, bool, error) {
	s.key, s.in = key, in
	if s.err != nil {
		return nil, false, s.err
	}
	return &dto.SaleResponse{ID: "s-1", ProductID: in.ProductID, Quantity: in.Quantity}, s.replayed, nil
}

func (s *stubSales) GetByID(_ context.Context, id string) (*dto.SaleResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SaleResponse{ID: id}, nil
}

func (s *stubSales) List(_ context.Context, f filter.Sales, _ filter.Page) (*dto.SaleListResponse, error) {
	s.filter = f
	return &dto.SaleListResponse{}, s.err
}

type stubAnalytics struct {
	err    error
	period string
	filter filter.Revenue
}

func (s *stubAnalytics) RevenueReport(_ context.Context, period string, f filter.Revenue) (*dto.RevenueReportDTO, error) {
	s.period, s.filter = period, f
	if s.err != nil {
		return nil, s.err
	}
	return &dto.RevenueReportDTO{Period: period, Buckets: []dto.RevenueBucketDTO{}}, nil
}

func (s *stubAnalytics) RevenueReportPDF(ctx context.Context, period string, f filter.Revenue) ([]byte, *dto.RevenueReportDTO, error) {
	report, err := s.RevenueReport(ctx, period, f)
	if err != nil {
		return nil, nil, err
	}
	return []byte("%PDF-1.4 stub"), report, nil
}

type stubDashboard struct{ err error }

func (s stubDashboard) GetSummary(context.Context) (*dto.DashboardSummaryDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DashboardSummaryDTO{TodayOrders: 3, LowStockCount: 2}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
