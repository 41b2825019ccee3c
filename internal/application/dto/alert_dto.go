package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockQueryRequest filtros del endpoint de alertas de bajo stock.
type LowStockQueryRequest struct {
	WarehouseIDs    []string // filtro opcional de bodegas
	CategoryIDs     []string // filtro opcional de categorías
	RecentSalesDays int      // ventana de ventas recientes en días (0 → default)
}

// SalesVelocityDTO velocidad de venta de un par producto-bodega.
type SalesVelocityDTO struct {
	DailyAverage     decimal.Decimal `json:"daily_average"`
	TotalRecentSales decimal.Decimal `json:"total_recent_sales"`
	ActiveSalesDays  int             `json:"active_sales_days"`
}

// SupplierInfoDTO proveedor primario para reorden. Nil en la alerta si el
// producto no tiene proveedor primario.
type SupplierInfoDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	ContactEmail string           `json:"contact_email"`
	SupplierSKU  string           `json:"supplier_sku"`
	SupplierPrice *decimal.Decimal `json:"supplier_price"`
	LeadTimeDays int              `json:"lead_time_days"`
}

// LowStockAlertDTO alerta de bajo stock para un par producto-bodega.
type LowStockAlertDTO struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      decimal.Decimal  `json:"current_stock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout int              `json:"days_until_stockout"`
	SalesVelocity     SalesVelocityDTO `json:"sales_velocity"`
	Supplier          *SupplierInfoDTO `json:"supplier"`
}

// LowStockSummaryDTO metadatos del cálculo de alertas.
type LowStockSummaryDTO struct {
	RecentSalesPeriodDays int       `json:"recent_sales_period_days"`
	Timestamp             time.Time `json:"timestamp"`
	CompanyID             string    `json:"company_id"`
}

// LowStockAlertsResponse respuesta completa del endpoint de alertas.
type LowStockAlertsResponse struct {
	Alerts         []LowStockAlertDTO `json:"alerts"`
	TotalAlerts    int                `json:"total_alerts"`
	CriticalAlerts int                `json:"critical_alerts"`
	Summary        LowStockSummaryDTO `json:"summary"`
}

// StockVelocityResponse salida del helper de velocidad de venta.
type StockVelocityResponse struct {
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	TotalSold     decimal.Decimal `json:"total_sold"`
	SalesDays     int             `json:"sales_days"`
	DailyVelocity decimal.Decimal `json:"daily_velocity"`
	PeriodDays    int             `json:"period_days"`
}

// UpdateThresholdRequest cuerpo del PUT de umbral. Puntero para distinguir
// "no enviado" de cero.
type UpdateThresholdRequest struct {
	Threshold *int `json:"threshold"`
}

// UpdateThresholdResponse confirmación de actualización del umbral. Incluye la
// categoría porque el umbral aplica a todos sus productos.
type UpdateThresholdResponse struct {
	Message      string `json:"message"`
	ProductID    string `json:"product_id"`
	CategoryID   string `json:"category_id"`
	NewThreshold int    `json:"new_threshold"`
}
