package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cambio registrados en el historial de inventario.
const (
	ChangeTypeInitialStock = "INITIAL_STOCK"
	ChangeTypeSale         = "SALE"
	ChangeTypeAdjustment   = "ADJUSTMENT"
)

// InventoryHistory registro de auditoría de cambios de cantidad (append-only:
// una vez escrito no se modifica ni se elimina).
type InventoryHistory struct {
	ID             string
	ProductID      string
	WarehouseID    string
	ChangeType     string
	QuantityChange decimal.Decimal // delta aplicado (negativo en salidas)
	NewQuantity    decimal.Decimal // cantidad resultante tras el cambio
	CreatedBy      string          // usuario que originó el cambio
	CreatedAt      time.Time
}
