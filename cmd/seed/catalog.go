package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

type demoCategory struct {
	name, description string
}

type demoProduct struct {
	name, sku, category, platform string
	price                         string
}

var demoCategories = []demoCategory{
	{"Electronics", "Electronic devices and accessories"},
	{"Home & Kitchen", "Home appliances and kitchen items"},
	{"Books", "Books and educational materials"},
	{"Clothing", "Apparel and fashion items"},
	{"Sports & Outdoors", "Sports equipment and outdoor gear"},
	{"Beauty & Personal Care", "Beauty products and personal care items"},
	{"Toys & Games", "Toys and gaming products"},
	{"Health & Household", "Health products and household items"},
}

var demoProducts = []demoProduct{
	{"Samsung Galaxy Earbuds Pro", "SAM-EAR-001", "Electronics", "Amazon", "199.99"},
	{"iPhone 15 Case", "APL-CAS-001", "Electronics", "Amazon", "24.99"},
	{"Sony WH-1000XM4 Headphones", "SON-HEA-001", "Electronics", "Walmart", "349.99"},
	{"Anker PowerBank 10000mAh", "ANK-POW-001", "Electronics", "Amazon", "45.99"},
	{"Logitech MX Master 3 Mouse", "LOG-MOU-001", "Electronics", "Walmart", "99.99"},

	{"Instant Pot Duo 7-in-1", "INS-POT-001", "Home & Kitchen", "Amazon", "89.99"},
	{"KitchenAid Stand Mixer", "KIT-MIX-001", "Home & Kitchen", "Walmart", "399.99"},
	{"Ninja Blender", "NIN-BLE-001", "Home & Kitchen", "Amazon", "79.99"},
	{"Dyson V11 Vacuum", "DYS-VAC-001", "Home & Kitchen", "Walmart", "599.99"},

	{"The Psychology of Money", "BOO-PSY-001", "Books", "Amazon", "16.99"},
	{"Atomic Habits", "BOO-HAB-001", "Books", "Amazon", "18.99"},
	{"The 7 Habits of Highly Effective People", "BOO-HAB-002", "Books", "Walmart", "15.99"},

	{"Nike Air Max 270", "NIK-SHO-001", "Clothing", "Amazon", "129.99"},
	{"Levi's 501 Original Jeans", "LEV-JEA-001", "Clothing", "Walmart", "69.99"},
	{"Adidas Ultraboost 22", "ADI-SHO-001", "Clothing", "Amazon", "179.99"},

	{"Yeti Rambler 30oz", "YET-RAM-001", "Sports & Outdoors", "Amazon", "39.99"},
	{"Coleman 4-Person Tent", "COL-TEN-001", "Sports & Outdoors", "Walmart", "119.99"},
	{"Hydro Flask Water Bottle", "HYD-BOT-001", "Sports & Outdoors", "Amazon", "44.99"},

	{"CeraVe Moisturizing Cream", "CER-MOI-001", "Beauty & Personal Care", "Amazon", "19.99"},
	{"Olay Regenerist Serum", "OLA-SER-001", "Beauty & Personal Care", "Walmart", "28.99"},
	{"Neutrogena Sunscreen SPF 50", "NEU-SUN-001", "Beauty & Personal Care", "Amazon", "12.99"},

	{"LEGO Creator 3-in-1 Deep Sea Creatures", "LEG-CRE-001", "Toys & Games", "Amazon", "79.99"},
	{"Monopoly Classic Board Game", "MON-CLA-001", "Toys & Games", "Walmart", "24.99"},
	{"Hot Wheels 20-Car Pack", "HOT-CAR-001", "Toys & Games", "Amazon", "19.99"},

	{"Charmin Ultra Soft Toilet Paper", "CHA-TOI-001", "Health & Household", "Walmart", "24.99"},
	{"Tide Laundry Detergent Pods", "TID-DET-001", "Health & Household", "Amazon", "18.99"},
	{"Lysol Disinfecting Wipes", "LYS-WIP-001", "Health & Household", "Walmart", "4.99"},
}

// catalog datos de demo listos para insertar.
type catalog struct {
	categories []entity.Category
	products   []entity.Product
	inventory  []entity.Inventory
}

func buildCatalog(rng *rand.Rand, now time.Time) (*catalog, error) {
	c := &catalog{}
	byName := make(map[string]string, len(demoCategories))
	for _, dc := range demoCategories {
		id := uuid.NewString()
		byName[dc.name] = id
		c.categories = append(c.categories, entity.Category{ID: id, Name: dc.name, Description: dc.description, CreatedAt: now})
	}
	for i, dp := range demoProducts {
		categoryID, ok := byName[dp.category]
		if !ok {
			return nil, fmt.Errorf("producto %s: categoría %q inexistente", dp.sku, dp.category)
		}
		price, err := decimal.NewFromString(dp.price)
		if err != nil {
			return nil, fmt.Errorf("producto %s: precio: %w", dp.sku, err)
		}
		// created_at escalonado para que el orden del catálogo sea estable.
		createdAt := now.Add(time.Duration(i) * time.Millisecond)
		p := entity.Product{
			ID:          uuid.NewString(),
			Name:        dp.name,
			Description: fmt.Sprintf("High-quality %s available on %s", dp.name, dp.platform),
			Price:       price,
			SKU:         dp.sku,
			CategoryID:  categoryID,
			Platform:    dp.platform,
			IsActive:    true,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}
		c.products = append(c.products, p)
		c.inventory = append(c.inventory, entity.Inventory{
			ID:                uuid.NewString(),
			ProductID:         p.ID,
			Quantity:          5 + rng.Intn(496),
			LowStockThreshold: 10 + rng.Intn(41),
			LastUpdated:       now,
		})
	}
	return c, nil
}

// generateSales crea entre 5 y 20 ventas diarias desde now-days hasta now, con ±10% sobre el precio de lista.
func generateSales(rng *rand.Rand, products []entity.Product, now time.Time, days int) []entity.Sale {
	if len(products) == 0 || days < 0 {
		return nil
	}
	start := now.AddDate(0, 0, -days)
	var sales []entity.Sale
	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		n := 5 + rng.Intn(16)
		for i := 0; i < n; i++ {
			p := products[rng.Intn(len(products))]
			quantity := 1 + rng.Intn(5)
			variation := decimal.NewFromFloat(0.9 + rng.Float64()*0.2)
			unitPrice := p.Price.Mul(variation).Round(2)
			saleDate := day.Truncate(24*time.Hour).
				Add(time.Duration(rng.Intn(24))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
			if saleDate.After(now) {
				saleDate = now
			}
			sales = append(sales, entity.Sale{
				ID:          uuid.NewString(),
				ProductID:   p.ID,
				Quantity:    quantity,
				UnitPrice:   unitPrice,
				TotalAmount: entity.SaleTotal(quantity, unitPrice),
				SaleDate:    saleDate,
				Platform:    p.Platform,
				OrderID:     fmt.Sprintf("ORD-%06d", 100000+rng.Intn(900000)),
				CreatedAt:   now,
			})
		}
	}
	return sales
}

// forceLowStock deja n registros de inventario por debajo de su umbral y devuelve los afectados.
func forceLowStock(rng *rand.Rand, inventory []entity.Inventory, n int, now time.Time) []entity.Inventory {
	if n > len(inventory) {
		n = len(inventory)
	}
	picked := make([]entity.Inventory, 0, n)
	for _, idx := range rng.Perm(len(inventory))[:n] {
		inv := &inventory[idx]
		inv.Quantity = 1 + rng.Intn(9)
		if inv.Quantity > inv.LowStockThreshold {
			inv.Quantity = inv.LowStockThreshold
		}
		inv.LastUpdated = now
		picked = append(picked, *inv)
	}
	return picked
}
