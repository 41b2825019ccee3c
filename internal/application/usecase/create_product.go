package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// skuPattern solo letras, dígitos y guiones.
var skuPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// CreateProductUseCase crea un producto con su inventario inicial y el registro
// de auditoría, en una única transacción.
type CreateProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create valida la entrada, verifica bodega y unicidad del SKU, y persiste
// producto + stock inicial + historial INITIAL_STOCK de forma atómica.
// companyID es la empresa autenticada; debe coincidir con la del cuerpo.
//
// La unicidad real del SKU la garantiza el constraint único en DB: el chequeo
// previo con GetBySKU solo adelanta la respuesta. Una carrera entre dos
// creaciones concurrentes termina en violación 23505 dentro de la transacción,
// que el repositorio traduce al mismo domain.ErrDuplicate.
func (uc *CreateProductUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if err := validateCreateProduct(in); err != nil {
		return nil, err
	}
	if in.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || !warehouse.IsActive || warehouse.CompanyID != companyID {
		return nil, domain.ErrInvalidWarehouse
	}

	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		SKU:       in.SKU,
		Name:      in.Name,
		Price:     *in.Price,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	quantity := *in.InitialQuantity

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		historyRepo repository.InventoryHistoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if err := stockRepo.Upsert(&entity.Stock{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    quantity,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}
		return historyRepo.Create(&entity.InventoryHistory{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			WarehouseID:    in.WarehouseID,
			ChangeType:     entity.ChangeTypeInitialStock,
			QuantityChange: quantity,
			NewQuantity:    quantity,
			CreatedBy:      userID,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Message:   "producto creado exitosamente",
		ProductID: product.ID,
		SKU:       product.SKU,
	}, nil
}

func validateCreateProduct(in dto.CreateProductRequest) error {
	ve := domain.NewValidationError()

	if in.Name == "" {
		ve.Add("name", "es requerido")
	} else if len(in.Name) > 255 {
		ve.Add("name", "máximo 255 caracteres")
	}

	if in.SKU == "" {
		ve.Add("sku", "es requerido")
	} else if len(in.SKU) > 50 {
		ve.Add("sku", "máximo 50 caracteres")
	} else if !skuPattern.MatchString(in.SKU) {
		ve.Add("sku", "solo letras, números y guiones")
	}

	if in.Price == nil {
		ve.Add("price", "es requerido")
	} else if in.Price.LessThan(decimal.Zero) {
		ve.Add("price", "debe ser mayor o igual a cero")
	}

	if in.WarehouseID == "" {
		ve.Add("warehouse_id", "es requerido")
	}

	if in.InitialQuantity == nil {
		ve.Add("initial_quantity", "es requerido")
	} else if in.InitialQuantity.LessThan(decimal.Zero) {
		ve.Add("initial_quantity", "debe ser mayor o igual a cero")
	}

	if in.CompanyID == "" {
		ve.Add("company_id", "es requerido")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
