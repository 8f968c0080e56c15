package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

// maxCount tope de cantidades y umbrales; las columnas son INTEGER.
const maxCount = math.MaxInt32

// validateCount exige 0 <= n <= maxCount.
func validateCount(field string, n int) error {
	if n < 0 {
		return domain.Invalid(field, "no puede ser negativo")
	}
	if n > maxCount {
		return domain.Invalid(field, fmt.Sprintf("máximo %d", maxCount))
	}
	return nil
}

// InventoryUseCase ajustes manuales de stock y listado de inventario.
type InventoryUseCase struct {
	repo   repository.InventoryRepository
	tx     ports.TxRunner
	events ports.EventPublisher
	log    *logger.Logger
}

// NewInventoryUseCase construye el caso de uso. events puede ser nil.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	tx ports.TxRunner,
	events ports.EventPublisher,
	log *logger.Logger,
) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{repo: repo, tx: tx, events: events, log: log}
}

// Update fija o ajusta el stock y/o el umbral de un producto con la fila bloqueada.
func (uc *InventoryUseCase) Update(ctx context.Context, productID string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := filter.ValidID("product_id", productID); err != nil {
		return nil, err
	}
	if in.Quantity == nil && in.Adjustment == nil && in.LowStockThreshold == nil {
		return nil, domain.Invalid("", "se requiere quantity, adjustment o low_stock_threshold")
	}
	if in.Quantity != nil && in.Adjustment != nil {
		return nil, domain.Invalid("adjustment", "no se puede combinar con quantity")
	}
	if in.Quantity != nil {
		if err := validateCount("quantity", *in.Quantity); err != nil {
			return nil, err
		}
	}
	if in.Adjustment != nil && (*in.Adjustment > maxCount || *in.Adjustment < -maxCount) {
		return nil, domain.Invalid("adjustment", fmt.Sprintf("fuera de rango (±%d)", maxCount))
	}
	if in.LowStockThreshold != nil {
		if err := validateCount("low_stock_threshold", *in.LowStockThreshold); err != nil {
			return nil, err
		}
	}

	var before, after entity.Inventory
	err := uc.tx.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.SaleRepository,
	) error {
		inv, err := inventoryRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("inventario de %s: %w", productID, domain.ErrNotFound)
		}
		before = *inv

		switch {
		case in.Quantity != nil:
			inv.Quantity = *in.Quantity
		case in.Adjustment != nil:
			next := inv.Quantity + *in.Adjustment
			if next < 0 || next > maxCount {
				return domain.Invalid("adjustment", fmt.Sprintf("el stock resultante sería %d", next))
			}
			inv.Quantity = next
		}
		if in.LowStockThreshold != nil {
			inv.LowStockThreshold = *in.LowStockThreshold
		}
		inv.LastUpdated = time.Now().UTC()

		if err := inventoryRepo.Update(ctx, inv); err != nil {
			return fmt.Errorf("actualizar inventario de %s: %w", productID, err)
		}
		after = *inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	if crossedLowStock(before, after) {
		publish(ctx, uc.events, uc.log, ports.TopicInventoryLowStock, productID, lowStockEvent(after))
	}
	out := toInventoryResponse(&after, nil)
	return &out, nil
}

// List lista inventario con su producto.
func (uc *InventoryUseCase) List(ctx context.Context, f filter.Inventory, page filter.Page) (*dto.InventoryListResponse, error) {
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
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, it := range list {
		items = append(items, toInventoryResponse(&it.Inventory, &it.Product))
	}
	return &dto.InventoryListResponse{Items: items, Page: toPageResponse(page, total)}, nil
}
