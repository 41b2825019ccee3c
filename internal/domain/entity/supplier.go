package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor al que se le reordena mercancía.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
}

// SupplierProduct vincula un producto con un proveedor. IsPrimary marca el
// proveedor por defecto para reorden; a lo sumo uno por producto.
type SupplierProduct struct {
	SupplierID    string
	ProductID     string
	SupplierSKU   string
	SupplierPrice decimal.Decimal
	LeadTimeDays  int
	IsPrimary     bool
}
