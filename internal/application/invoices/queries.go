package invoices

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/pkg/money"
)

// listingTTL vigencia de una página cacheada del listado. La invalidación tras
// cada mutación es la vía principal; el TTL solo acota entradas huérfanas.
const listingTTL = 5 * time.Minute

// ListInvoices devuelve una página del listado de facturas con los datos del
// cliente. Se sirve cache-aside bajo la misma ruta de vista que invalidan las
// mutaciones, así el listado observa cada cambio confirmado.
func (a *Actions) ListInvoices(ctx context.Context, query string, page dto.PageRequest) ([]dto.InvoiceRowResponse, error) {
	page.DefaultPage()
	key := fmt.Sprintf("%s?limit=%d&offset=%d&query=%s", InvoicesViewPath, page.Limit, page.Offset, query)

	if payload, ok := a.cache.Get(ctx, key); ok {
		var rows []dto.InvoiceRowResponse
		if err := json.Unmarshal(payload, &rows); err == nil {
			return rows, nil
		}
		// Entrada corrupta: se ignora y se recalcula.
	}

	list, err := a.repo.ListWithCustomer(query, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	rows := make([]dto.InvoiceRowResponse, 0, len(list))
	for _, row := range list {
		rows = append(rows, toInvoiceRow(row))
	}

	if payload, err := json.Marshal(rows); err == nil {
		a.cache.Set(ctx, key, payload, listingTTL)
	}
	return rows, nil
}

// GetInvoice devuelve la factura id (para el formulario de edición).
func (a *Actions) GetInvoice(id string) (*dto.InvoiceResponse, error) {
	invoice, err := a.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceResponse{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     invoice.Amount,
		Status:     invoice.Status,
		Date:       invoice.Date.Format("2006-01-02"),
	}, nil
}

func toInvoiceRow(row *entity.InvoiceRow) dto.InvoiceRowResponse {
	return dto.InvoiceRowResponse{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		Amount:          row.Amount,
		AmountFormatted: money.FormatUSD(row.Amount),
		Status:          row.Status,
		Date:            row.Date.Format("2006-01-02"),
	}
}
