package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/logger"
	"github.com/jhoicas/dashboard-api/pkg/money"
)

// InvoicesViewPath ruta de la vista de listado que las mutaciones invalidan y a
// la que redirigen al terminar con éxito.
const InvoicesViewPath = "/dashboard/invoices"

// Mensajes resumen de las acciones.
const (
	msgMissingFieldsCreate = "Missing Fields. Failed to create invoice"
	msgMissingFieldsUpdate = "Missing Fields. Failed to update invoice"
	msgDBErrorCreate       = "Database Error: Failed to create invoice."
	msgDBErrorUpdate       = "Database Error: Failed to update invoice."
)

// ErrDeleteInvoice fallo no recuperable al eliminar: delete no tiene canal de
// resultado estructurado, el error sube hasta la frontera genérica.
var ErrDeleteInvoice = errors.New("Failed to delete invoice")

// Actions acciones de mutación de facturas. Cada acción es un único intento:
// validar → persistir → invalidar la vista → pedir la redirección. Sin retries
// ni transacciones multi-statement.
type Actions struct {
	repo  repository.InvoiceRepository
	cache ViewCache
	log   *logger.Logger
}

// NewActions construye las acciones de facturas.
func NewActions(repo repository.InvoiceRepository, cache ViewCache, log *logger.Logger) *Actions {
	return &Actions{repo: repo, cache: cache, log: log}
}

// CreateInvoice valida el formulario y crea la factura. prev es el estado
// anterior del formulario; forma parte del contrato del caller y no se usa.
//
// Fallo de validación: State con errores por campo, sin tocar el backend.
// Fallo de persistencia: State solo con mensaje, sin invalidación ni redirección.
// Éxito: invalida el listado y redirige a él.
func (a *Actions) CreateInvoice(ctx context.Context, prev State, form InvoiceForm) Outcome {
	sanitized, fieldErrors := ValidateInvoiceForm(form)
	if fieldErrors != nil {
		return failWith(State{Errors: fieldErrors, Message: msgMissingFieldsCreate})
	}

	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: sanitized.CustomerID,
		Amount:     money.ToCents(sanitized.Amount),
		Status:     sanitized.Status,
		Date:       today(),
	}
	if err := a.repo.Create(invoice); err != nil {
		a.log.Error().Err(err).Msg("crear factura")
		return failWith(State{Message: msgDBErrorCreate})
	}

	a.invalidateListing(ctx)
	return redirectTo(InvoicesViewPath)
}

// UpdateInvoice valida el formulario y actualiza la factura id. Solo cambia
// customer_id, amount y status; id y date quedan intactos.
func (a *Actions) UpdateInvoice(ctx context.Context, id string, prev State, form InvoiceForm) Outcome {
	sanitized, fieldErrors := ValidateInvoiceForm(form)
	if fieldErrors != nil {
		return failWith(State{Errors: fieldErrors, Message: msgMissingFieldsUpdate})
	}

	invoice := &entity.Invoice{
		ID:         id,
		CustomerID: sanitized.CustomerID,
		Amount:     money.ToCents(sanitized.Amount),
		Status:     sanitized.Status,
	}
	if err := a.repo.Update(invoice); err != nil {
		a.log.Error().Err(err).Str("invoice_id", id).Msg("actualizar factura")
		return failWith(State{Message: msgDBErrorUpdate})
	}

	a.invalidateListing(ctx)
	return redirectTo(InvoicesViewPath)
}

// DeleteInvoice elimina la factura id sin validación ni comprobación de
// existencia (borrar un id inexistente no es un error). En fallo del backend
// registra y devuelve ErrDeleteInvoice para que lo maneje la frontera genérica.
// Nunca redirige: se invoca desde el listado ya visible.
func (a *Actions) DeleteInvoice(ctx context.Context, id string) error {
	if err := a.repo.Delete(id); err != nil {
		a.log.Error().Err(err).Str("invoice_id", id).Msg("eliminar factura")
		return ErrDeleteInvoice
	}
	a.invalidateListing(ctx)
	return nil
}

// invalidateListing marca el listado como obsoleto. Best-effort: la mutación ya
// está confirmada, un fallo del cache solo se registra.
func (a *Actions) invalidateListing(ctx context.Context) {
	if err := a.cache.Invalidate(ctx, InvoicesViewPath); err != nil {
		a.log.Warn().Err(err).Str("view", InvoicesViewPath).Msg("invalidar vista")
	}
}

// today devuelve la fecha del día de la invocación, sin componente horario.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
