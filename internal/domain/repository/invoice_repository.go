package repository

import "github.com/jhoicas/dashboard-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada operación es un único statement; el backend serializa escrituras
// concurrentes por su cuenta (last-write-wins).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// Update modifica solo customer_id, amount y status, nunca id ni date.
	Update(invoice *entity.Invoice) error
	// Delete elimina por id sin comprobar existencia; borrar un id inexistente
	// no es un error.
	Delete(id string) error
	GetByID(id string) (*entity.Invoice, error)
	// ListWithCustomer devuelve la página del listado con nombre y email del
	// cliente; query filtra por nombre o email (puede ser vacío).
	ListWithCustomer(query string, limit, offset int) ([]*entity.InvoiceRow, error)
}
