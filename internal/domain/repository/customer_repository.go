package repository

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	GetByID(id string) (*entity.Customer, error)
	// List devuelve clientes ordenados por nombre (para el selector del formulario).
	List(limit, offset int) ([]*entity.Customer, error)
}
