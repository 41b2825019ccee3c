package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: este adaptador solo inserta.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create persiste un registro de historial de inventario.
func (r *InventoryHistoryRepo) Create(record *entity.InventoryHistory) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_history (id, product_id, warehouse_id, change_type, quantity_change, new_quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if record.CreatedBy != "" {
		createdBy = &record.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.WarehouseID, record.ChangeType,
		record.QuantityChange, record.NewQuantity, createdBy, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory history: %w", err)
	}
	return nil
}
