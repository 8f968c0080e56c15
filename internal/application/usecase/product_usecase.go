package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

const (
	maxProductName = 200
	maxSKU         = 50
	maxPlatform    = 50
)

// NUMERIC(12,2)
var maxMoney = decimal.New(1, 10)

// ProductUseCase casos de uso del catálogo de productos.
// El stock no se toca aquí salvo el inicial, que se crea en la misma tx que el producto.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	tx         ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, tx ports.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, tx: tx}
}

// Create crea el producto y su fila de inventario de forma atómica.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	platform := strings.TrimSpace(in.Platform)

	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, domain.Invalid("sku", "es obligatorio")
	}
	if utf8.RuneCountInString(sku) > maxSKU {
		return nil, domain.Invalid("sku", "máximo 50 caracteres")
	}
	if err := validatePrice("price", in.Price); err != nil {
		return nil, err
	}
	if err := validatePlatform(platform); err != nil {
		return nil, err
	}
	if err := filter.ValidID("category_id", in.CategoryID); err != nil {
		return nil, err
	}
	if err := validateCount("initial_stock", in.InitialStock); err != nil {
		return nil, err
	}
	threshold := entity.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		if err := validateCount("low_stock_threshold", *in.LowStockThreshold); err != nil {
			return nil, err
		}
		threshold = *in.LowStockThreshold
	}
	if err := uc.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		SKU:         sku,
		CategoryID:  in.CategoryID,
		Platform:    platform,
		IsActive:    in.IsActive == nil || *in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	inventory := &entity.Inventory{
		ID:                uuid.New().String(),
		ProductID:         product.ID,
		Quantity:          in.InitialStock,
		LowStockThreshold: threshold,
		LastUpdated:       now,
	}

	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.SaleRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("crear producto %s: %w", sku, err)
		}
		if err := inventoryRepo.Create(ctx, inventory); err != nil {
			return fmt.Errorf("crear inventario de %s: %w", sku, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID. Inexistente -> domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Update actualización parcial. El SKU y el stock no se modifican aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validateProductName(name); err != nil {
			return nil, err
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if err := validatePrice("price", *in.Price); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	if in.Platform != nil {
		platform := strings.TrimSpace(*in.Platform)
		if err := validatePlatform(platform); err != nil {
			return nil, err
		}
		product.Platform = platform
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		if err := filter.ValidID("category_id", *in.CategoryID); err != nil {
			return nil, err
		}
		if err := uc.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("actualizar producto %s: %w", id, err)
	}
	out := toProductResponse(product)
	return &out, nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, f filter.Products, page filter.Page) (*dto.ProductListResponse, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, f, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: toPageResponse(page, total)}, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	if err := filter.ValidID("id", id); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

func (uc *ProductUseCase) ensureCategory(ctx context.Context, id string) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return domain.Invalid("name", "es obligatorio")
	}
	if utf8.RuneCountInString(name) > maxProductName {
		return domain.Invalid("name", "máximo 200 caracteres")
	}
	return nil
}

func validatePrice(field string, price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.Invalid(field, "no puede ser negativo")
	}
	if !price.Equal(price.Round(2)) {
		return domain.Invalid(field, "máximo 2 decimales")
	}
	if price.GreaterThanOrEqual(maxMoney) {
		return domain.Invalid(field, "fuera de rango")
	}
	return nil
}

func validatePlatform(platform string) error {
	if utf8.RuneCountInString(platform) > maxPlatform {
		return domain.Invalid("platform", "máximo 50 caracteres")
	}
	return nil
}
