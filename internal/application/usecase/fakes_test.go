package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// memStore base de datos en memoria. txMu serializa las transacciones igual que el bloqueo de fila.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	categories map[string]entity.Category
	products   map[string]entity.Product
	inventory  map[string]entity.Inventory // por product_id
	sales      map[string]entity.Sale
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[string]entity.Category{},
		products:   map[string]entity.Product{},
		inventory:  map[string]entity.Inventory{},
		sales:      map[string]entity.Sale{},
	}
}

func (s *memStore) snapshot() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := newMemStore()
	for k, v := range s.categories {
		cp.categories[k] = v
	}
	for k, v := range s.products {
		cp.products[k] = v
	}
	for k, v := range s.inventory {
		cp.inventory[k] = v
	}
	for k, v := range s.sales {
		cp.sales[k] = v
	}
	return cp
}

func (s *memStore) restore(cp *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories, s.products, s.inventory, s.sales = cp.categories, cp.products, cp.inventory, cp.sales
}

// Run implementa ports.TxRunner con rollback por snapshot.
func (s *memStore) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	cp := s.snapshot()
	if err := fn(memProducts{s}, memInventory{s}, memSales{s}); err != nil {
		s.restore(cp)
		return err
	}
	return nil
}

func (s *memStore) stock(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory[productID].Quantity
}

func (s *memStore) saleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

func paginate[T any](items []T, page filter.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}

type memCategories struct{ s *memStore }

func (r memCategories) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCategories) List(_ context.Context, page filter.Page) ([]*entity.Category, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name == all[j].Name {
			return all[i].ID < all[j].ID
		}
		return all[i].Name < all[j].Name
	})
	return paginate(all, page), len(all), nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (r memProducts) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r memProducts) List(_ context.Context, f filter.Products, page filter.Page) ([]*entity.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Product
	for _, p := range r.s.products {
		p := p
		if f.Platform != "" && p.Platform != f.Platform {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.IsActive != nil && p.IsActive != *f.IsActive {
			continue
		}
		if f.LowStockOnly && !r.s.inventory[p.ID].IsLowStock() {
			continue
		}
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return paginate(all, page), len(all), nil
}

type memInventory struct{ s *memStore }

func (r memInventory) Create(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[inv.ProductID]; ok {
		return domain.ErrDuplicate
	}
	r.s.inventory[inv.ProductID] = *inv
	return nil
}

func (r memInventory) GetByProduct(_ context.Context, productID string) (*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.inventory[productID]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r memInventory) GetForUpdate(ctx context.Context, productID string) (*entity.Inventory, error) {
	return r.GetByProduct(ctx, productID)
}

func (r memInventory) Update(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[inv.ProductID]; !ok {
		return domain.ErrNotFound
	}
	r.s.inventory[inv.ProductID] = *inv
	return nil
}

func (r memInventory) List(_ context.Context, f filter.Inventory, page filter.Page) ([]*entity.InventoryItem, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.InventoryItem
	for pid, inv := range r.s.inventory {
		if f.LowStockOnly && !inv.IsLowStock() {
			continue
		}
		if m := f.EffectiveMaxQuantity(); m != nil && inv.Quantity > *m {
			continue
		}
		all = append(all, &entity.InventoryItem{Inventory: inv, Product: r.s.products[pid]})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Product.CreatedAt.Equal(all[j].Product.CreatedAt) {
			return all[i].ProductID < all[j].ProductID
		}
		return all[i].Product.CreatedAt.Before(all[j].Product.CreatedAt)
	})
	return paginate(all, page), len(all), nil
}

type memSales struct{ s *memStore }

func (r memSales) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r memSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r memSales) List(_ context.Context, f filter.Sales, page filter.Page) ([]*entity.Sale, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Sale
	for _, sale := range r.s.sales {
		sale := sale
		if !f.Dates.Contains(sale.SaleDate) {
			continue
		}
		if f.ProductID != "" && sale.ProductID != f.ProductID {
			continue
		}
		if f.Platform != "" && sale.Platform != f.Platform {
			continue
		}
		all = append(all, &sale)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].SaleDate.Equal(all[j].SaleDate) {
			return all[i].ID < all[j].ID
		}
		return all[i].SaleDate.After(all[j].SaleDate)
	})
	return paginate(all, page), len(all), nil
}

type published struct {
	topic   string
	key     string
	payload any
}

// recordingPublisher guarda los eventos publicados.
type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic, key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{topic, key, payload})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.topic)
	}
	return out
}

type memIdempotency struct {
	mu    sync.Mutex
	keys  map[string]string
	delay time.Duration
	err   error
}

const pendingKey = "pending"

func (m *memIdempotency) Reserve(_ context.Context, key string) (string, bool, error) {
	time.Sleep(m.delay)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", false, m.err
	}
	if m.keys == nil {
		m.keys = map[string]string{}
	}
	v, ok := m.keys[key]
	if !ok {
		m.keys[key] = pendingKey
		return "", true, nil
	}
	if v == pendingKey {
		return "", false, nil
	}
	return v, false, nil
}

func (m *memIdempotency) Save(_ context.Context, key, saleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = saleID
	return nil
}

func (m *memIdempotency) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}

func (m *memIdempotency) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.keys[key]
	return v, ok
}
