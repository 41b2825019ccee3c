package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockQuery parámetros para buscar pares producto-bodega bajo umbral.
type LowStockQuery struct {
	CompanyID    string
	Cutoff       time.Time // inicio de la ventana de ventas recientes
	WarehouseIDs []string  // vacío = todas las bodegas
	CategoryIDs  []string  // vacío = todas las categorías
}

// LowStockRow fila candidata a alerta: par producto-bodega con cantidad bajo
// umbral y ventas completadas dentro de la ventana. Los campos de proveedor
// son punteros: nil cuando el producto no tiene proveedor primario.
type LowStockRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Quantity      decimal.Decimal
	Threshold     int
	TotalSold     decimal.Decimal // unidades vendidas en la ventana
	SalesDays     int             // días distintos con actividad de venta

	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
	SupplierSKU   *string
	SupplierPrice *decimal.Decimal
	LeadTimeDays  *int
}

// VelocityResult agregado de ventas de un producto en una bodega.
type VelocityResult struct {
	TotalSold decimal.Decimal
	SalesDays int
}

// AlertRepository consultas de solo lectura para el análisis de quiebre de stock.
type AlertRepository interface {
	// ListLowStockCandidates retorna los pares producto-bodega de la empresa con
	// producto y bodega activos, cantidad <= umbral (categoría o 10 por defecto)
	// y ventas completadas > 0 dentro de la ventana, aplicando los filtros
	// opcionales de bodega y categoría. El orden final lo decide el caso de uso.
	ListLowStockCandidates(ctx context.Context, q LowStockQuery) ([]LowStockRow, error)
	// GetProductVelocity agrega ventas completadas del producto en la bodega
	// desde cutoff. Retorna ceros si no hubo ventas.
	GetProductVelocity(ctx context.Context, companyID, productID, warehouseID string, cutoff time.Time) (VelocityResult, error)
}
