package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/application/usecase"
	"github.com/invorya/stock-alerts/internal/domain"
)

// ProductHandler maneja el catálogo de productos: creación, listado, stock y
// umbral de bajo stock.
type ProductHandler struct {
	createUC    *usecase.CreateProductUseCase
	thresholdUC *usecase.ThresholdUseCase
	queryUC     *usecase.ProductQueryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *usecase.CreateProductUseCase, thresholdUC *usecase.ThresholdUseCase, queryUC *usecase.ProductQueryUseCase) *ProductHandler {
	return &ProductHandler{createUC: createUC, thresholdUC: thresholdUC, queryUC: queryUC}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateProductRequest  true  "Producto a crear"
// @Success      201  {object}  dto.CreateProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	tokenCompany := GetCompanyID(c)
	if tokenCompany == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}

	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo JSON inválido"})
	}

	out, err := h.createUC.Create(c.Context(), tokenCompany, GetUserID(c), in)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: ve.Fields})
		}
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		case errors.Is(err, domain.ErrInvalidWarehouse):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WAREHOUSE", Message: "la bodega no existe o no pertenece a la empresa"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe"})
		}
		log.Error().Err(err).Str("company_id", tokenCompany).Msg("creando producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible crear el producto"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos de la empresa
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	limit, offset := pageParams(c)
	out, err := h.queryUC.List(companyID, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID).Msg("listando productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible listar los productos"})
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Stock actual de un producto en una bodega
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        company_id    path   string  true  "ID de la empresa"
// @Param        product_id    path   string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/products/{product_id}/stock [get]
func (h *ProductHandler) GetStock(c *fiber.Ctx) error {
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

	out, err := h.queryUC.GetStock(companyID, c.Params("product_id"), warehouseID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		log.Error().Err(err).Str("company_id", companyID).Msg("consultando stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible consultar el stock"})
	}
	return c.JSON(out)
}

// UpdateThreshold godoc
// @Summary      Actualizar umbral de bajo stock del producto
// @Description  El umbral pertenece a la categoría del producto; el cambio afecta a toda la categoría.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        company_id  path  string                      true  "ID de la empresa"
// @Param        product_id  path  string                      true  "ID del producto"
// @Param        request     body  dto.UpdateThresholdRequest  true  "Nuevo umbral"
// @Success      200  {object}  dto.UpdateThresholdResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/products/{product_id}/threshold [put]
func (h *ProductHandler) UpdateThreshold(c *fiber.Ctx) error {
	tokenCompany := GetCompanyID(c)
	if tokenCompany == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	companyID := c.Params("company_id")
	if companyID != tokenCompany {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}

	var in dto.UpdateThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo JSON inválido"})
	}

	out, err := h.thresholdUC.UpdateThreshold(companyID, c.Params("product_id"), in.Threshold)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: ve.Fields})
		}
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		case errors.Is(err, domain.ErrProductWithoutCategory):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_CATEGORY", Message: "el producto no tiene categoría asignada"})
		}
		log.Error().Err(err).Str("company_id", companyID).Msg("actualizando umbral")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible actualizar el umbral"})
	}
	return c.JSON(out)
}
