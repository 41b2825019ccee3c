package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock cantidad actual de un producto en una bodega (única por par producto-bodega).
// La cantidad nunca es negativa.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
