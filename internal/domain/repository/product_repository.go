package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Create persiste un producto nuevo. Retorna domain.ErrDuplicate si el SKU ya existe.
	Create(product *entity.Product) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU a nivel global (el SKU es único entre empresas). (nil, nil) si no existe.
	GetBySKU(sku string) (*entity.Product, error)
	// ListByCompany lista productos de una empresa con paginación.
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
}
