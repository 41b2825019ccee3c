package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// StockRepository puerto de persistencia para el stock por producto y bodega.
type StockRepository interface {
	// Get retorna el stock del par; cantidad cero si aún no hay fila.
	Get(productID, warehouseID string) (*entity.Stock, error)
	// Upsert inserta o actualiza la cantidad del par producto-bodega.
	Upsert(stock *entity.Stock) error
}
