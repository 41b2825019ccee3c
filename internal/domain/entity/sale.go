package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Solo las completadas cuentan para la velocidad de venta.
const (
	SaleStatusCompleted = "completed"
	SaleStatusPending   = "pending"
	SaleStatusCancelled = "cancelled"
)

// Sale transacción histórica de venta de una empresa.
type Sale struct {
	ID        string
	CompanyID string
	SaleDate  time.Time
	Status    string // completed, pending, cancelled
	CreatedAt time.Time
}

// SaleItem línea de una venta: producto, bodega de despacho y cantidad.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
}
