package entity

import "time"

// Company empresa dueña de productos, bodegas y usuarios (multi-tenant).
type Company struct {
	ID        string
	Name      string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
