package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain/repository"
	apphttp "github.com/invorya/stock-alerts/internal/interfaces/http"
)

type fakeAlertRepo struct {
	rows      []repository.LowStockRow
	velocity  repository.VelocityResult
	queried   bool
	lastQuery repository.LowStockQuery
}

func (f *fakeAlertRepo) ListLowStockCandidates(_ context.Context, q repository.LowStockQuery) ([]repository.LowStockRow, error) {
	f.queried = true
	f.lastQuery = q
	return f.rows, nil
}

func (f *fakeAlertRepo) GetProductVelocity(_ context.Context, _, _, _ string, _ time.Time) (repository.VelocityResult, error) {
	f.queried = true
	return f.velocity, nil
}

func buildAlertsApp(repo *fakeAlertRepo) *fiber.App {
	app := fiber.New()
	uc := alerts.NewUseCase(repo, nil, alerts.Config{DefaultLookbackDays: 90, CriticalDaysToStockout: 7})
	handler := apphttp.NewAlertHandler(uc)
	app.Get("/api/companies/:company_id/alerts/low-stock",
		apphttp.AuthMiddleware(testJWTSecret), handler.GetLowStock)
	app.Get("/api/companies/:company_id/products/:product_id/velocity",
		apphttp.AuthMiddleware(testJWTSecret), handler.GetVelocity)
	return app
}

func lowStockRow(productID string, quantity float64, threshold int, totalSold float64) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:     productID,
		ProductName:   "producto " + productID,
		SKU:           "SKU-" + productID,
		WarehouseID:   "wh-1",
		WarehouseName: "Bodega Principal",
		Quantity:      decimal.NewFromFloat(quantity),
		Threshold:     threshold,
		TotalSold:     decimal.NewFromFloat(totalSold),
		SalesDays:     20,
	}
}

func TestGetLowStock_SinToken_Retorna401(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := buildAlertsApp(repo)

	resp := doRequest(t, app, "/api/companies/"+testCompanyID+"/alerts/low-stock", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, repo.queried, "sin token no debe tocarse la base de datos")
}

func TestGetLowStock_EmpresaAjena_Retorna403SinConsultar(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := buildAlertsApp(repo)

	resp := doRequest(t, app, "/api/companies/otra-empresa/alerts/low-stock", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, repo.queried, "una empresa ajena no debe disparar la consulta")
}

func TestGetLowStock_RespuestaCompletaYOrdenada(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{
		lowStockRow("lejano", 9, 10, 90),  // ratio 0.9, 9 días
		lowStockRow("urgente", 2, 10, 90), // ratio 0.2, 2 días → crítico
	}}
	app := buildAlertsApp(repo)

	resp := doRequest(t, app, "/api/companies/"+testCompanyID+"/alerts/low-stock", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.LowStockAlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 2, body.TotalAlerts)
	assert.Equal(t, 1, body.CriticalAlerts)
	require.Len(t, body.Alerts, 2)
	assert.Equal(t, "urgente", body.Alerts[0].ProductID, "el par más agotado va primero")
	assert.Equal(t, "lejano", body.Alerts[1].ProductID)
	assert.Nil(t, body.Alerts[0].Supplier)
	assert.Equal(t, 90, body.Summary.RecentSalesPeriodDays)
	assert.Equal(t, testCompanyID, body.Summary.CompanyID)
}

func TestGetLowStock_FiltrosYVentanaPersonalizada(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := buildAlertsApp(repo)

	path := "/api/companies/" + testCompanyID + "/alerts/low-stock" +
		"?warehouse_ids=wh-1,wh-2&category_ids=cat-1&recent_sales_days=30"
	resp := doRequest(t, app, path, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"wh-1", "wh-2"}, repo.lastQuery.WarehouseIDs)
	assert.Equal(t, []string{"cat-1"}, repo.lastQuery.CategoryIDs)

	expectedCutoff := time.Now().UTC().AddDate(0, 0, -30)
	assert.WithinDuration(t, expectedCutoff, repo.lastQuery.Cutoff, time.Minute)

	// Sin candidatos, la lista llega vacía pero la respuesta es 200.
	var body dto.LowStockAlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.TotalAlerts)
	assert.Equal(t, 30, body.Summary.RecentSalesPeriodDays)
}

func TestGetVelocity_SinWarehouseID_Retorna400(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := buildAlertsApp(repo)

	resp := doRequest(t, app, "/api/companies/"+testCompanyID+"/products/p1/velocity", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, repo.queried)
}

func TestGetVelocity_Exitoso(t *testing.T) {
	repo := &fakeAlertRepo{velocity: repository.VelocityResult{
		TotalSold: decimal.NewFromInt(45),
		SalesDays: 15,
	}}
	app := buildAlertsApp(repo)

	path := "/api/companies/" + testCompanyID + "/products/p1/velocity?warehouse_id=wh-1&days=30"
	resp := doRequest(t, app, path, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "p1", body["product_id"])
	assert.Equal(t, "wh-1", body["warehouse_id"])
	assert.Equal(t, "1.5", body["daily_velocity"], "45 unidades / 30 días")
	assert.Equal(t, float64(30), body["period_days"])
}

func TestGetVelocity_EmpresaAjena_Retorna403(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := buildAlertsApp(repo)

	path := "/api/companies/otra-empresa/products/p1/velocity?warehouse_id=wh-1"
	resp := doRequest(t, app, path, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, repo.queried)
}
