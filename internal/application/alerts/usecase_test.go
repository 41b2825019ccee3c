package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de alertas
// ──────────────────────────────────────────────────────────────────────────────

type fakeAlertRepo struct {
	rows      []repository.LowStockRow
	velocity  repository.VelocityResult
	lastQuery repository.LowStockQuery
}

func (f *fakeAlertRepo) ListLowStockCandidates(_ context.Context, q repository.LowStockQuery) ([]repository.LowStockRow, error) {
	f.lastQuery = q
	return f.rows, nil
}

func (f *fakeAlertRepo) GetProductVelocity(_ context.Context, _, _, _ string, _ time.Time) (repository.VelocityResult, error) {
	return f.velocity, nil
}

// row construye una fila candidata con lo mínimo que el ranking necesita.
func row(productID string, quantity float64, threshold int, totalSold float64, salesDays int) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:     productID,
		ProductName:   "producto " + productID,
		SKU:           "SKU-" + productID,
		WarehouseID:   "wh-1",
		WarehouseName: "Bodega Principal",
		Quantity:      decimal.NewFromFloat(quantity),
		Threshold:     threshold,
		TotalSold:     decimal.NewFromFloat(totalSold),
		SalesDays:     salesDays,
	}
}

func ids(alerts []dto.LowStockAlertDTO) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.ProductID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking
// ──────────────────────────────────────────────────────────────────────────────

// El orden es por ratio cantidad/umbral ascendente: el más agotado primero.
func TestBuildAlerts_OrdenaPorRatioAscendente(t *testing.T) {
	rows := []repository.LowStockRow{
		row("medio", 5, 10, 30, 20),  // ratio 0.5
		row("bajo", 2, 10, 30, 20),   // ratio 0.2
		row("alto", 9, 10, 30, 20),   // ratio 0.9
	}

	got := alerts.BuildAlerts(rows, 30)

	assert.Equal(t, []string{"bajo", "medio", "alto"}, ids(got))
}

// A igual ratio, gana la mayor velocidad de venta.
func TestBuildAlerts_DesempataPorVelocidadDescendente(t *testing.T) {
	rows := []repository.LowStockRow{
		row("lento", 5, 10, 30, 20),   // ratio 0.5, velocidad 1/día
		row("rapido", 10, 20, 150, 28), // ratio 0.5, velocidad 5/día
	}

	got := alerts.BuildAlerts(rows, 30)

	assert.Equal(t, []string{"rapido", "lento"}, ids(got))
}

// Umbral cero: la fila solo puede ser candidata con cantidad cero y debe
// quedar de primera (ratio cero).
func TestBuildAlerts_UmbralCeroEsElMasCritico(t *testing.T) {
	rows := []repository.LowStockRow{
		row("normal", 1, 10, 30, 20),    // ratio 0.1
		row("sin-umbral", 0, 0, 30, 20), // ratio 0
	}

	got := alerts.BuildAlerts(rows, 30)

	require.Len(t, got, 2)
	assert.Equal(t, "sin-umbral", got[0].ProductID)
	assert.Equal(t, 0, got[0].DaysUntilStockout, "cantidad cero se agota en 0 días")
}

// ──────────────────────────────────────────────────────────────────────────────
// Días hasta quiebre
// ──────────────────────────────────────────────────────────────────────────────

// Sin velocidad de venta, el estimado es exactamente 999.
func TestBuildAlerts_SinVentas_Retorna999(t *testing.T) {
	rows := []repository.LowStockRow{row("p1", 5, 10, 0, 0)}

	got := alerts.BuildAlerts(rows, 30)

	require.Len(t, got, 1)
	assert.Equal(t, alerts.MaxDaysUntilStockout, got[0].DaysUntilStockout)
	assert.True(t, got[0].SalesVelocity.DailyAverage.IsZero())
}

// El estimado nunca supera 999 aunque la cantidad sea enorme.
func TestBuildAlerts_DiasAcotadosAlTope(t *testing.T) {
	// 10000 unidades a 0.1/día serían 100000 días.
	rows := []repository.LowStockRow{row("p1", 10000, 20000, 3, 3)}

	got := alerts.BuildAlerts(rows, 30)

	require.Len(t, got, 1)
	assert.Equal(t, alerts.MaxDaysUntilStockout, got[0].DaysUntilStockout)
}

// Estimado redondeado: 5 unidades a 2/día son 2.5 días, redondeado a 3.
func TestBuildAlerts_DiasRedondeados(t *testing.T) {
	rows := []repository.LowStockRow{row("p1", 5, 10, 60, 25)} // velocidad 2/día

	got := alerts.BuildAlerts(rows, 30)

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].DaysUntilStockout)
	assert.True(t, got[0].SalesVelocity.DailyAverage.Equal(decimal.NewFromInt(2)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildAlerts_SinProveedorPrimario_SupplierNil(t *testing.T) {
	got := alerts.BuildAlerts([]repository.LowStockRow{row("p1", 5, 10, 30, 20)}, 30)

	require.Len(t, got, 1)
	assert.Nil(t, got[0].Supplier)
}

func TestBuildAlerts_ConProveedorPrimario(t *testing.T) {
	r := row("p1", 5, 10, 30, 20)
	supplierID := "sup-1"
	name := "Proveedor Andino"
	email := "ventas@andino.co"
	sku := "PRV-001"
	lead := 5
	price := decimal.NewFromInt(1800)
	r.SupplierID = &supplierID
	r.SupplierName = &name
	r.SupplierEmail = &email
	r.SupplierSKU = &sku
	r.SupplierPrice = &price
	r.LeadTimeDays = &lead

	got := alerts.BuildAlerts([]repository.LowStockRow{r}, 30)

	require.Len(t, got, 1)
	require.NotNil(t, got[0].Supplier)
	assert.Equal(t, "sup-1", got[0].Supplier.ID)
	assert.Equal(t, "Proveedor Andino", got[0].Supplier.Name)
	assert.Equal(t, 5, got[0].Supplier.LeadTimeDays)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caso de uso completo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStockAlerts_VentanaPorDefectoYCriticas(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		row("critico", 3, 10, 90, 30),   // velocidad 1/día → 3 días
		row("tranquilo", 9, 10, 90, 30), // velocidad 1/día → 9 días
	}}
	uc := alerts.NewUseCase(repo, nil, alerts.Config{DefaultLookbackDays: 90, CriticalDaysToStockout: 7})

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1", dto.LowStockQueryRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalAlerts)
	assert.Equal(t, 1, out.CriticalAlerts, "solo el de 3 días es crítico")
	assert.Equal(t, 90, out.Summary.RecentSalesPeriodDays)
	assert.Equal(t, "comp-1", out.Summary.CompanyID)

	// El cutoff enviado al repositorio debe ser ahora - 90 días.
	expectedCutoff := time.Now().UTC().AddDate(0, 0, -90)
	assert.WithinDuration(t, expectedCutoff, repo.lastQuery.Cutoff, time.Minute)
	assert.Equal(t, "comp-1", repo.lastQuery.CompanyID)
}

func TestGetLowStockAlerts_VentanaPersonalizadaYFiltros(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := alerts.NewUseCase(repo, nil, alerts.Config{DefaultLookbackDays: 90, CriticalDaysToStockout: 7})

	out, err := uc.GetLowStockAlerts(context.Background(), "comp-1", dto.LowStockQueryRequest{
		WarehouseIDs:    []string{"wh-1", "wh-2"},
		CategoryIDs:     []string{"cat-1"},
		RecentSalesDays: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalAlerts)
	assert.Empty(t, out.Alerts)
	assert.Equal(t, 30, out.Summary.RecentSalesPeriodDays)
	assert.Equal(t, []string{"wh-1", "wh-2"}, repo.lastQuery.WarehouseIDs)
	assert.Equal(t, []string{"cat-1"}, repo.lastQuery.CategoryIDs)
}

func TestCalculateStockVelocity(t *testing.T) {
	repo := &fakeAlertRepo{velocity: repository.VelocityResult{
		TotalSold: decimal.NewFromInt(45),
		SalesDays: 15,
	}}
	uc := alerts.NewUseCase(repo, nil, alerts.Config{DefaultLookbackDays: 90, CriticalDaysToStockout: 7})

	out, err := uc.CalculateStockVelocity(context.Background(), "comp-1", "p1", "wh-1", 30)
	require.NoError(t, err)

	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, "wh-1", out.WarehouseID)
	assert.Equal(t, 30, out.PeriodDays)
	assert.Equal(t, 15, out.SalesDays)
	assert.True(t, out.DailyVelocity.Equal(decimal.NewFromFloat(1.5)), "45 unidades / 30 días = 1.5")
}
