package entity

import "time"

// DefaultLowStockThreshold umbral aplicado cuando la categoría no define uno
// o el producto no tiene categoría.
const DefaultLowStockThreshold = 10

// Category representa una categoría de productos.
// LowStockThreshold es compartido por todos los productos de la categoría:
// actualizarlo afecta las alertas de cada uno de ellos.
type Category struct {
	ID                string
	CompanyID         string
	Name              string
	LowStockThreshold *int // nil → se aplica DefaultLowStockThreshold
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
