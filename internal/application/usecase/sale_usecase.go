package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

const (
	maxOrderID        = 100
	maxIdempotencyKey = 200
)

// SaleUseCase registro y consulta de ventas.
// Registrar una venta descuenta el stock en la misma transacción y nunca deja stock negativo.
type SaleUseCase struct {
	sales  repository.SaleRepository
	tx     ports.TxRunner
	idem   ports.IdempotencyStore
	events ports.EventPublisher
	log    *logger.Logger
}

// NewSaleUseCase construye el caso de uso. idem y events pueden ser nil.
func NewSaleUseCase(
	sales repository.SaleRepository,
	tx ports.TxRunner,
	idem ports.IdempotencyStore,
	events ports.EventPublisher,
	log *logger.Logger,
) *SaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{sales: sales, tx: tx, idem: idem, events: events, log: log}
}

// Create registra una venta. Con idempotencyKey repetida devuelve la venta original y replayed=true.
func (uc *SaleUseCase) Create(ctx context.Context, idempotencyKey string, in dto.CreateSaleRequest) (out *dto.SaleResponse, replayed bool, err error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if utf8.RuneCountInString(idempotencyKey) > maxIdempotencyKey {
		return nil, false, domain.Invalid("Idempotency-Key", "máximo 200 caracteres")
	}
	prev, reserved, err := uc.reserve(ctx, idempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if prev != nil {
		resp := toSaleResponse(prev)
		return &resp, true, nil
	}
	defer func() {
		if err != nil && reserved {
			uc.release(ctx, idempotencyKey)
		}
	}()

	if err = validateSale(in); err != nil {
		return nil, false, err
	}

	var sale entity.Sale
	var before, after entity.Inventory
	err = uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
		}

		inv, err := inventoryRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("inventario de %s: %w", in.ProductID, domain.ErrNotFound)
		}
		if in.Quantity > inv.Quantity {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, inv.Quantity, in.Quantity)
		}

		now := time.Now().UTC()
		before = *inv
		inv.Quantity -= in.Quantity
		inv.LastUpdated = now
		if err := inventoryRepo.Update(ctx, inv); err != nil {
			return fmt.Errorf("descontar stock de %s: %w", in.ProductID, err)
		}
		after = *inv

		sale = newSale(in, product, now)
		if err := saleRepo.Create(ctx, &sale); err != nil {
			return fmt.Errorf("registrar venta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if reserved {
		uc.remember(ctx, idempotencyKey, sale.ID)
	}
	publish(ctx, uc.events, uc.log, ports.TopicSaleRecorded, sale.ProductID, SaleRecordedEvent{
		SaleID:         sale.ID,
		ProductID:      sale.ProductID,
		Quantity:       sale.Quantity,
		UnitPrice:      sale.UnitPrice,
		TotalAmount:    sale.TotalAmount,
		Platform:       sale.Platform,
		OrderID:        sale.OrderID,
		SaleDate:       sale.SaleDate,
		RemainingStock: after.Quantity,
	})
	if crossedLowStock(before, after) {
		publish(ctx, uc.events, uc.log, ports.TopicInventoryLowStock, sale.ProductID, lowStockEvent(after))
	}

	resp := toSaleResponse(&sale)
	return &resp, false, nil
}

// GetByID obtiene una venta. Inexistente -> domain.ErrNotFound.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	if err := filter.ValidID("id", id); err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	out := toSaleResponse(sale)
	return &out, nil
}

// List lista ventas filtradas, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, f filter.Sales, page filter.Page) (*dto.SaleListResponse, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	list, total, err := uc.sales.List(ctx, f, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Page: toPageResponse(page, total)}, nil
}

// reserve toma la clave antes de registrar la venta. Devuelve la venta previa si la clave
// ya tiene una, o domain.ErrConflict si otra petición con la misma clave sigue en curso.
// Un fallo del store se registra y se sigue sin idempotencia.
func (uc *SaleUseCase) reserve(ctx context.Context, key string) (*entity.Sale, bool, error) {
	if key == "" || uc.idem == nil {
		return nil, false, nil
	}
	saleID, reserved, err := uc.idem.Reserve(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotencia no disponible")
		return nil, false, nil
	}
	if reserved {
		return nil, true, nil
	}
	if saleID == "" {
		return nil, false, fmt.Errorf("clave de idempotencia %q en curso: %w", key, domain.ErrConflict)
	}
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil || sale == nil {
		uc.log.Warn().Err(err).Str("idempotency_key", key).Str("sale_id", saleID).Msg("venta de la clave no encontrada")
		return nil, false, nil
	}
	return sale, false, nil
}

func (uc *SaleUseCase) remember(ctx context.Context, key, saleID string) {
	if err := uc.idem.Save(ctx, key, saleID); err != nil {
		uc.log.Warn().Err(err).Str("idempotency_key", key).Str("sale_id", saleID).Msg("no se pudo guardar la clave")
	}
}

func (uc *SaleUseCase) release(ctx context.Context, key string) {
	if err := uc.idem.Release(ctx, key); err != nil {
		uc.log.Warn().Err(err).Str("idempotency_key", key).Msg("no se pudo liberar la clave")
	}
}

func validateSale(in dto.CreateSaleRequest) error {
	if err := filter.ValidID("product_id", in.ProductID); err != nil {
		return err
	}
	if in.Quantity <= 0 {
		return domain.Invalid("quantity", "debe ser mayor que 0")
	}
	if in.Quantity > maxCount {
		return domain.Invalid("quantity", fmt.Sprintf("máximo %d", maxCount))
	}
	if in.UnitPrice != nil {
		if err := validatePrice("unit_price", *in.UnitPrice); err != nil {
			return err
		}
	}
	if err := validatePlatform(strings.TrimSpace(in.Platform)); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.OrderID) > maxOrderID {
		return domain.Invalid("order_id", "máximo 100 caracteres")
	}
	return nil
}

// newSale completa los valores por defecto con los datos del producto.
func newSale(in dto.CreateSaleRequest, product *entity.Product, now time.Time) entity.Sale {
	unitPrice := product.Price
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	platform := strings.TrimSpace(in.Platform)
	if platform == "" {
		platform = product.Platform
	}
	saleDate := now
	if in.SaleDate != nil {
		saleDate = in.SaleDate.UTC()
	}
	return entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Quantity:    in.Quantity,
		UnitPrice:   unitPrice,
		TotalAmount: entity.SaleTotal(in.Quantity, unitPrice),
		SaleDate:    saleDate,
		Platform:    platform,
		OrderID:     strings.TrimSpace(in.OrderID),
		CreatedAt:   now,
	}
}
