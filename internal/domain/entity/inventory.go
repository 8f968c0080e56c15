package entity

import "time"

// DefaultLowStockThreshold umbral usado cuando no se indica uno al crear el producto.
const DefaultLowStockThreshold = 10

// Inventory representa el stock actual de un producto (una fila por producto).
type Inventory struct {
	ID                string
	ProductID         string
	Quantity          int
	LowStockThreshold int
	LastUpdated       time.Time
}

// IsLowStock es derivado: Quantity <= LowStockThreshold. No se persiste.
func (i Inventory) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// InventoryItem fila de inventario junto con su producto (listados).
type InventoryItem struct {
	Inventory
	Product Product
}
