package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El SKU es único a nivel global (constraint en DB); el stock se maneja por bodega en Stock.
type Product struct {
	ID         string
	CompanyID  string
	CategoryID string // vacío si el producto no tiene categoría
	SKU        string
	Name       string
	Price      decimal.Decimal // precio de venta
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
