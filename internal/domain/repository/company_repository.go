package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(company *entity.Company) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.Company, error)
}
