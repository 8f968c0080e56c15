package usecase

import (
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

func toPageResponse(page filter.Page, total int) dto.PageResponse {
	return dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		CategoryID:  p.CategoryID,
		Platform:    p.Platform,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toInventoryResponse(inv *entity.Inventory, product *entity.Product) dto.InventoryResponse {
	out := dto.InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		Quantity:          inv.Quantity,
		LowStockThreshold: inv.LowStockThreshold,
		IsLowStock:        inv.IsLowStock(),
		LastUpdated:       inv.LastUpdated,
	}
	if product != nil {
		p := toProductResponse(product)
		out.Product = &p
	}
	return out
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		SaleDate:    s.SaleDate,
		Platform:    s.Platform,
		OrderID:     s.OrderID,
		CreatedAt:   s.CreatedAt,
	}
}
