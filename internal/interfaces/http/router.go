package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/auth"
	"github.com/invorya/stock-alerts/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlertsUC      *alerts.UseCase
	CreateProduct *usecase.CreateProductUseCase
	ThresholdUC   *usecase.ThresholdUseCase
	ProductQuery  *usecase.ProductQueryUseCase
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: el registro de usuarios necesita una empresa previa)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/companies", companyHandler.Create)
	api.Get("/companies/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alertas de bajo stock y velocidad de venta (protegido)
	alertHandler := NewAlertHandler(deps.AlertsUC)
	protected.Get("/companies/:company_id/alerts/low-stock", alertHandler.GetLowStock)
	protected.Get("/companies/:company_id/products/:product_id/velocity", alertHandler.GetVelocity)

	// Warehouses (protegido)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	protected.Post("/warehouses", warehouseHandler.Create)
	protected.Get("/warehouses", warehouseHandler.List)

	// Products (protegido)
	productHandler := NewProductHandler(deps.CreateProduct, deps.ThresholdUC, deps.ProductQuery)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products", productHandler.List)
	protected.Get("/companies/:company_id/products/:product_id/stock", productHandler.GetStock)
	protected.Put("/companies/:company_id/products/:product_id/threshold", productHandler.UpdateThreshold)
}
