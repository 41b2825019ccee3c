package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con inventario inicial.
type CreateProductRequest struct {
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Price           *decimal.Decimal `json:"price"`
	WarehouseID     string           `json:"warehouse_id"`
	InitialQuantity *decimal.Decimal `json:"initial_quantity"`
	CompanyID       string           `json:"company_id"`
}

// CreateProductResponse confirmación de creación.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
}
