package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
)

// AlertHandler maneja las peticiones HTTP de alertas de bajo stock (protegido).
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// GetLowStock godoc
// @Summary      Alertas de bajo stock de la empresa
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id         path   string  true   "ID de la empresa"
// @Param        warehouse_ids      query  string  false  "IDs de bodega separados por coma"
// @Param        category_ids       query  string  false  "IDs de categoría separados por coma"
// @Param        recent_sales_days  query  int     false  "Ventana de ventas recientes"  default(90)
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	tokenCompany := GetCompanyID(c)
	if tokenCompany == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	companyID := c.Params("company_id")
	// Aislamiento multi-tenant: nunca se consulta antes de validar la empresa.
	if companyID != tokenCompany {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}

	in := dto.LowStockQueryRequest{
		WarehouseIDs:    splitIDList(c.Query("warehouse_ids")),
		CategoryIDs:     splitIDList(c.Query("category_ids")),
		RecentSalesDays: c.QueryInt("recent_sales_days", 0),
	}

	out, err := h.uc.GetLowStockAlerts(c.Context(), companyID, in)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID).Msg("generando alertas de bajo stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible generar las alertas"})
	}
	return c.JSON(out)
}

// GetVelocity godoc
// @Summary      Velocidad de venta de un producto en una bodega
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id    path   string  true   "ID de la empresa"
// @Param        product_id    path   string  true   "ID del producto"
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        days          query  int     false  "Ventana en días"  default(90)
// @Success      200  {object}  dto.StockVelocityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/products/{product_id}/velocity [get]
func (h *AlertHandler) GetVelocity(c *fiber.Ctx) error {
	tokenCompany := GetCompanyID(c)
	if tokenCompany == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	companyID := c.Params("company_id")
	if companyID != tokenCompany {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}

	out, err := h.uc.CalculateStockVelocity(c.Context(), companyID, c.Params("product_id"), warehouseID, c.QueryInt("days", 0))
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID).Msg("calculando velocidad de venta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible calcular la velocidad"})
	}
	return c.JSON(out)
}

// splitIDList parte una lista separada por comas, ignorando vacíos.
func splitIDList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
