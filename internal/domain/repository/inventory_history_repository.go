package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// InventoryHistoryRepository puerto del historial de cambios de inventario.
// El historial es append-only: solo se insertan registros.
type InventoryHistoryRepository interface {
	Create(record *entity.InventoryHistory) error
}
