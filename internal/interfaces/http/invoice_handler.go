package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/invoices"
	"github.com/jhoicas/dashboard-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	actions *invoices.Actions
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(actions *invoices.Actions) *InvoiceHandler {
	return &InvoiceHandler{actions: actions}
}

// Create crea una factura desde el formulario.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	outcome := h.actions.CreateInvoice(c.Context(), invoices.State{}, toForm(in))
	return renderOutcome(c, outcome)
}

// Update actualiza la factura :id desde el formulario de edición.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.InvoiceFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	outcome := h.actions.UpdateInvoice(c.Context(), id, invoices.State{}, toForm(in))
	return renderOutcome(c, outcome)
}

// Delete elimina la factura :id. Un fallo del backend se propaga al error
// handler de la app (frontera genérica): delete no tiene resultado estructurado.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.actions.DeleteInvoice(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List devuelve el listado paginado (con filtro ?query=).
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	rows, err := h.actions.ListInvoices(c.Context(), c.Query("query"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// GetByID devuelve la factura :id (formulario de edición).
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	invoice, err := h.actions.GetInvoice(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

func toForm(in dto.InvoiceFormRequest) invoices.InvoiceForm {
	return invoices.InvoiceForm{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Status:     in.Status,
	}
}

// renderOutcome traduce el Outcome de una acción a la respuesta HTTP: la
// redirección solicitada (303 See Other), 422 con errores por campo, o 500 con
// solo el mensaje (fallo de persistencia).
func renderOutcome(c *fiber.Ctx, outcome invoices.Outcome) error {
	if outcome.Redirect != "" {
		return c.Redirect(outcome.Redirect, fiber.StatusSeeOther)
	}
	if len(outcome.State.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(outcome.State)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(outcome.State)
}
