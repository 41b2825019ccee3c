package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías de productos.
type CategoryRepository interface {
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.Category, error)
	// UpdateThreshold fija low_stock_threshold de la categoría. El valor es
	// compartido por todos los productos de la categoría.
	UpdateThreshold(id string, threshold int) error
}
