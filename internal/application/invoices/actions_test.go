package invoices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	createErr error
	updateErr error
	deleteErr error

	created []*entity.Invoice
	updated []*entity.Invoice
	deleted []string
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, inv)
	return nil
}

func (f *fakeInvoiceRepo) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	// Sin comprobación de existencia: borrar un id desconocido también "funciona".
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return nil, nil }

func (f *fakeInvoiceRepo) ListWithCustomer(query string, limit, offset int) ([]*entity.InvoiceRow, error) {
	return nil, nil
}

type fakeViewCache struct {
	invalidated []string
	store       map[string][]byte
}

func (f *fakeViewCache) Invalidate(ctx context.Context, viewPath string) error {
	f.invalidated = append(f.invalidated, viewPath)
	return nil
}

func (f *fakeViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, ok := f.store[key]
	return payload, ok
}

func (f *fakeViewCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if f.store == nil {
		f.store = make(map[string][]byte)
	}
	f.store[key] = payload
}

func newActionsForTest(repo *fakeInvoiceRepo, cache *fakeViewCache) *Actions {
	return NewActions(repo, cache, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInvoice
// ──────────────────────────────────────────────────────────────────────────────

// Formulario válido → factura persistida en centavos con fecha de hoy,
// listado invalidado y redirección solicitada.
func TestCreateInvoice_Exitosa(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	outcome := actions.CreateInvoice(context.Background(), State{}, InvoiceForm{
		CustomerID: "c1",
		Amount:     "50",
		Status:     "paid",
	})

	assert.Equal(t, InvoicesViewPath, outcome.Redirect, "el éxito debe redirigir al listado")
	assert.Nil(t, outcome.State)

	require.Len(t, repo.created, 1)
	inv := repo.created[0]
	assert.NotEmpty(t, inv.ID, "el id lo asigna el sistema")
	assert.Equal(t, "c1", inv.CustomerID)
	assert.Equal(t, int64(5000), inv.Amount, "50 dólares son 5000 centavos")
	assert.Equal(t, "paid", inv.Status)

	y, m, d := time.Now().UTC().Date()
	assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), inv.Date, "la fecha es el día de la invocación, sin hora")

	assert.Equal(t, []string{InvoicesViewPath}, cache.invalidated, "el listado debe invalidarse tras el commit")
}

// El redondeo a centavos es round(monto * 100).
func TestCreateInvoice_RedondeoCentavos(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	actions := newActionsForTest(repo, &fakeViewCache{})

	actions.CreateInvoice(context.Background(), State{}, InvoiceForm{
		CustomerID: "c1",
		Amount:     "10.505",
		Status:     "pending",
	})

	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(1051), repo.created[0].Amount)
}

// Validación fallida → errores por campo, mensaje resumen y cero efectos:
// ni insert, ni invalidación, ni redirección.
func TestCreateInvoice_ValidacionFallidaSinEfectos(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	outcome := actions.CreateInvoice(context.Background(), State{}, InvoiceForm{
		CustomerID: "c1",
		Amount:     "0",
		Status:     "pending",
	})

	assert.Empty(t, outcome.Redirect)
	require.NotNil(t, outcome.State)
	assert.Equal(t, "Missing Fields. Failed to create invoice", outcome.State.Message)
	assert.Equal(t, []string{"Please enter a number greater than $0"}, outcome.State.Errors["amount"])

	assert.Empty(t, repo.created, "la validación corta antes de tocar el backend")
	assert.Empty(t, cache.invalidated)
}

// Fallo del backend → State solo con mensaje (sin errores de campo) y sin
// invalidación ni redirección.
func TestCreateInvoice_FalloBackend(t *testing.T) {
	repo := &fakeInvoiceRepo{createErr: errors.New("connection refused")}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	outcome := actions.CreateInvoice(context.Background(), State{}, InvoiceForm{
		CustomerID: "c1",
		Amount:     "50",
		Status:     "paid",
	})

	assert.Empty(t, outcome.Redirect)
	require.NotNil(t, outcome.State)
	assert.Equal(t, "Database Error: Failed to create invoice.", outcome.State.Message)
	assert.Nil(t, outcome.State.Errors, "un fallo de persistencia no lleva errores de campo")
	assert.Empty(t, cache.invalidated, "sin commit no hay invalidación")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateInvoice
// ──────────────────────────────────────────────────────────────────────────────

// Actualización válida → solo customer/amount/status viajan al repo, con el id
// del caller; invalida y redirige.
func TestUpdateInvoice_Exitosa(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	outcome := actions.UpdateInvoice(context.Background(), "inv-7", State{}, InvoiceForm{
		CustomerID: "c2",
		Amount:     "12.34",
		Status:     "pending",
	})

	assert.Equal(t, InvoicesViewPath, outcome.Redirect)
	require.Len(t, repo.updated, 1)
	inv := repo.updated[0]
	assert.Equal(t, "inv-7", inv.ID)
	assert.Equal(t, "c2", inv.CustomerID)
	assert.Equal(t, int64(1234), inv.Amount)
	assert.Equal(t, "pending", inv.Status)
	assert.True(t, inv.Date.IsZero(), "update nunca toca la fecha")

	assert.Equal(t, []string{InvoicesViewPath}, cache.invalidated)
}

func TestUpdateInvoice_ValidacionFallida(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	actions := newActionsForTest(repo, &fakeViewCache{})

	outcome := actions.UpdateInvoice(context.Background(), "inv-7", State{}, InvoiceForm{
		CustomerID: "",
		Amount:     "50",
		Status:     "bogus",
	})

	require.NotNil(t, outcome.State)
	assert.Equal(t, "Missing Fields. Failed to update invoice", outcome.State.Message)
	assert.Len(t, outcome.State.Errors, 2)
	assert.Empty(t, repo.updated)
}

func TestUpdateInvoice_FalloBackend(t *testing.T) {
	repo := &fakeInvoiceRepo{updateErr: errors.New("deadlock")}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	outcome := actions.UpdateInvoice(context.Background(), "inv-7", State{}, InvoiceForm{
		CustomerID: "c2",
		Amount:     "50",
		Status:     "paid",
	})

	require.NotNil(t, outcome.State)
	assert.Equal(t, "Database Error: Failed to update invoice.", outcome.State.Message)
	assert.Nil(t, outcome.State.Errors)
	assert.Empty(t, cache.invalidated)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteInvoice
// ──────────────────────────────────────────────────────────────────────────────

// Delete no valida, no redirige, e invalida el listado al terminar. Un id
// inexistente no es un error a nivel de la acción.
func TestDeleteInvoice_IdInexistenteInvalidaIgual(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	err := actions.DeleteInvoice(context.Background(), "no-existe")

	require.NoError(t, err)
	assert.Equal(t, []string{"no-existe"}, repo.deleted)
	assert.Equal(t, []string{InvoicesViewPath}, cache.invalidated)
}

// Fallo del backend en delete → error que sube al caller, sin State y sin
// invalidación.
func TestDeleteInvoice_FalloBackendPropaga(t *testing.T) {
	repo := &fakeInvoiceRepo{deleteErr: errors.New("timeout")}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	err := actions.DeleteInvoice(context.Background(), "inv-1")

	require.ErrorIs(t, err, ErrDeleteInvoice)
	assert.Empty(t, cache.invalidated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado cache-aside
// ──────────────────────────────────────────────────────────────────────────────

// La segunda lectura del listado sale del cache; tras una mutación vuelve a la
// base de datos (la invalidación borra la vista en el fake de integración del
// handler; aquí solo se comprueba el cacheo de la página).
func TestListInvoices_CacheaLaPagina(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	cache := &fakeViewCache{}
	actions := newActionsForTest(repo, cache)

	_, err := actions.ListInvoices(context.Background(), "", dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, cache.store, 1, "la página consultada debe quedar cacheada")
}
