package usecase

import (
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// ThresholdUseCase actualiza el umbral de bajo stock asociado a un producto.
//
// El umbral vive en la categoría del producto, así que la actualización aplica
// a todos los productos de esa categoría. No existe umbral por producto; un
// producto sin categoría no puede fijar umbral.
type ThresholdUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ThresholdUseCase {
	return &ThresholdUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// UpdateThreshold valida pertenencia del producto a la empresa y fija el nuevo
// umbral en la categoría. threshold nil o negativo → error de validación;
// producto inexistente → ErrNotFound; de otra empresa → ErrForbidden;
// sin categoría → ErrProductWithoutCategory.
func (uc *ThresholdUseCase) UpdateThreshold(companyID, productID string, threshold *int) (*dto.UpdateThresholdResponse, error) {
	if threshold == nil || *threshold < 0 {
		ve := domain.NewValidationError()
		ve.Add("threshold", "debe ser un entero no negativo")
		return nil, ve
	}

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
	if product.CategoryID == "" {
		return nil, domain.ErrProductWithoutCategory
	}

	category, err := uc.categoryRepo.GetByID(product.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.categoryRepo.UpdateThreshold(category.ID, *threshold); err != nil {
		return nil, err
	}

	return &dto.UpdateThresholdResponse{
		Message:      "umbral actualizado exitosamente",
		ProductID:    productID,
		CategoryID:   category.ID,
		NewThreshold: *threshold,
	}, nil
}
