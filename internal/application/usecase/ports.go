package usecase

import (
	"context"

	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que producto, stock inicial e
// historial se escriban los tres o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error) error
}
