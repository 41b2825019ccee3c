package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain/repository"
	"github.com/invorya/stock-alerts/pkg/logger"
)

// MaxDaysUntilStockout tope del estimado de días hasta quiebre. Se retorna
// exactamente este valor cuando no hay velocidad de venta.
const MaxDaysUntilStockout = 999

// Config parámetros del análisis.
type Config struct {
	DefaultLookbackDays    int // ventana por defecto si el request no la indica
	CriticalDaysToStockout int // alertas con días hasta quiebre <= este valor son críticas
}

// UseCase analizador de quiebre de stock: combina inventario bajo umbral con la
// velocidad de venta reciente para rankear los pares producto-bodega más urgentes.
type UseCase struct {
	repo repository.AlertRepository
	log  *logger.Logger
	cfg  Config
}

// NewUseCase construye el analizador. Aplica 90 días y 7 días críticos si la
// configuración viene en cero.
func NewUseCase(repo repository.AlertRepository, log *logger.Logger, cfg Config) *UseCase {
	if cfg.DefaultLookbackDays <= 0 {
		cfg.DefaultLookbackDays = 90
	}
	if cfg.CriticalDaysToStockout <= 0 {
		cfg.CriticalDaysToStockout = 7
	}
	return &UseCase{repo: repo, log: log, cfg: cfg}
}

// GetLowStockAlerts calcula las alertas de bajo stock de una empresa.
// El adaptador entrega los pares candidatos (cantidad <= umbral, ventas
// recientes > 0, producto y bodega activos); aquí se calcula velocidad diaria,
// días hasta quiebre y el orden final: ratio cantidad/umbral ascendente con
// desempate por velocidad descendente.
func (uc *UseCase) GetLowStockAlerts(ctx context.Context, companyID string, in dto.LowStockQueryRequest) (*dto.LowStockAlertsResponse, error) {
	days := in.RecentSalesDays
	if days <= 0 {
		days = uc.cfg.DefaultLookbackDays
	}
	now := time.Now().UTC()

	rows, err := uc.repo.ListLowStockCandidates(ctx, repository.LowStockQuery{
		CompanyID:    companyID,
		Cutoff:       now.AddDate(0, 0, -days),
		WarehouseIDs: in.WarehouseIDs,
		CategoryIDs:  in.CategoryIDs,
	})
	if err != nil {
		return nil, err
	}

	alerts := BuildAlerts(rows, days)

	critical := 0
	for _, a := range alerts {
		if a.DaysUntilStockout <= uc.cfg.CriticalDaysToStockout {
			critical++
		}
	}

	if len(alerts) > 0 && uc.log != nil {
		uc.log.Info().
			Str("company_id", companyID).
			Int("total_alerts", len(alerts)).
			Int("critical_alerts", critical).
			Msg("alertas de bajo stock generadas")
	}

	return &dto.LowStockAlertsResponse{
		Alerts:         alerts,
		TotalAlerts:    len(alerts),
		CriticalAlerts: critical,
		Summary: dto.LowStockSummaryDTO{
			RecentSalesPeriodDays: days,
			Timestamp:             now,
			CompanyID:             companyID,
		},
	}, nil
}

// CalculateStockVelocity agrega las ventas completadas de un producto en una
// bodega durante los últimos `days` días y retorna la velocidad diaria.
func (uc *UseCase) CalculateStockVelocity(ctx context.Context, companyID, productID, warehouseID string, days int) (*dto.StockVelocityResponse, error) {
	if days <= 0 {
		days = uc.cfg.DefaultLookbackDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	res, err := uc.repo.GetProductVelocity(ctx, companyID, productID, warehouseID, cutoff)
	if err != nil {
		return nil, err
	}

	return &dto.StockVelocityResponse{
		ProductID:     productID,
		WarehouseID:   warehouseID,
		TotalSold:     res.TotalSold,
		SalesDays:     res.SalesDays,
		DailyVelocity: dailyVelocity(res.TotalSold, days),
		PeriodDays:    days,
	}, nil
}

// BuildAlerts transforma las filas candidatas en alertas ordenadas.
// Exportada para poder probar el ranking sin base de datos.
func BuildAlerts(rows []repository.LowStockRow, lookbackDays int) []dto.LowStockAlertDTO {
	type ranked struct {
		alert    dto.LowStockAlertDTO
		ratio    decimal.Decimal
		velocity decimal.Decimal
	}

	items := make([]ranked, 0, len(rows))
	for _, row := range rows {
		velocity := dailyVelocity(row.TotalSold, lookbackDays)

		alert := dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.Quantity,
			Threshold:         row.Threshold,
			DaysUntilStockout: daysUntilStockout(row.Quantity, velocity),
			SalesVelocity: dto.SalesVelocityDTO{
				DailyAverage:     velocity,
				TotalRecentSales: row.TotalSold,
				ActiveSalesDays:  row.SalesDays,
			},
			Supplier: supplierInfo(row),
		}

		items = append(items, ranked{
			alert:    alert,
			ratio:    depletionRatio(row.Quantity, row.Threshold),
			velocity: velocity,
		})
	}

	// Más agotado primero: ratio ascendente; a igual ratio gana la mayor velocidad.
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].ratio.Equal(items[j].ratio) {
			return items[i].ratio.LessThan(items[j].ratio)
		}
		return items[i].velocity.GreaterThan(items[j].velocity)
	})

	alerts := make([]dto.LowStockAlertDTO, 0, len(items))
	for _, it := range items {
		alerts = append(alerts, it.alert)
	}
	return alerts
}

// dailyVelocity unidades por día sobre la ventana. El divisor se limita a >= 1
// para que una ventana de cero días no divida por cero.
func dailyVelocity(totalSold decimal.Decimal, days int) decimal.Decimal {
	if days < 1 {
		days = 1
	}
	return totalSold.Div(decimal.NewFromInt(int64(days))).Round(4)
}

// daysUntilStockout estimado redondeado de días hasta agotar la cantidad actual.
// Siempre en [0, MaxDaysUntilStockout]; exactamente el tope si no hay velocidad.
func daysUntilStockout(quantity, velocity decimal.Decimal) int {
	if !velocity.IsPositive() {
		return MaxDaysUntilStockout
	}
	days := quantity.Div(velocity).Round(0).IntPart()
	if days < 0 {
		return 0
	}
	if days > MaxDaysUntilStockout {
		return MaxDaysUntilStockout
	}
	return int(days)
}

// depletionRatio cantidad/umbral para el ranking. Umbral cero se trata como
// ratio cero: la fila solo llega aquí con cantidad cero y es la más crítica.
func depletionRatio(quantity decimal.Decimal, threshold int) decimal.Decimal {
	if threshold <= 0 {
		return decimal.Zero
	}
	return quantity.Div(decimal.NewFromInt(int64(threshold)))
}

func supplierInfo(row repository.LowStockRow) *dto.SupplierInfoDTO {
	if row.SupplierID == nil {
		return nil
	}
	info := &dto.SupplierInfoDTO{
		ID:            *row.SupplierID,
		SupplierPrice: row.SupplierPrice,
	}
	if row.SupplierName != nil {
		info.Name = *row.SupplierName
	}
	if row.SupplierEmail != nil {
		info.ContactEmail = *row.SupplierEmail
	}
	if row.SupplierSKU != nil {
		info.SupplierSKU = *row.SupplierSKU
	}
	if row.LeadTimeDays != nil {
		info.LeadTimeDays = *row.LeadTimeDays
	}
	return info
}
