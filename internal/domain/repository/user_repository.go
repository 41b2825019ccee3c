package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail retorna (nil, nil) si no existe.
	FindByEmail(email string) (*entity.User, error)
	// GetByEmailAndCompany retorna (nil, nil) si no existe en esa empresa.
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
}
