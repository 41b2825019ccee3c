package usecase

import (
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// ProductQueryUseCase consultas de solo lectura sobre el catálogo y su stock.
type ProductQueryUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewProductQueryUseCase construye el caso de uso.
func NewProductQueryUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *ProductQueryUseCase {
	return &ProductQueryUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// List lista los productos de la empresa con paginación.
func (uc *ProductQueryUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetStock retorna la cantidad actual de un producto en una bodega.
// Producto inexistente → ErrNotFound; de otra empresa → ErrForbidden.
// Si el par aún no tiene fila de stock la cantidad es cero.
func (uc *ProductQueryUseCase) GetStock(companyID, productID, warehouseID string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    stock.Quantity,
		UpdatedAt:   stock.UpdatedAt,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		CategoryID: p.CategoryID,
		SKU:        p.SKU,
		Name:       p.Name,
		Price:      p.Price,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
