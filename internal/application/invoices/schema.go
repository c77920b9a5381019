package invoices

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
)

// Campos del formulario de factura (claves del mapa de errores).
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Mensajes de validación visibles para el usuario.
const (
	msgCustomerRequired = "Please select a customer."
	msgAmountInvalid    = "Please enter a number greater than $0"
	msgStatusInvalid    = "Please select an invoice status."
)

// InvoiceForm campos crudos del formulario (texto sin validar).
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// SanitizedInvoice bundle validado y tipado, listo para persistir.
// Amount sigue en unidades mayores; la conversión a centavos es del mutador.
type SanitizedInvoice struct {
	CustomerID string
	Amount     decimal.Decimal // estrictamente > 0
	Status     string          // pending | paid
}

// rule regla declarativa: campo + predicado sobre el formulario + mensaje si falla.
type rule struct {
	field   string
	check   func(f InvoiceForm) bool
	message string
}

// invoiceRules tabla de reglas del formulario. Se evalúan todas, sin
// cortocircuito: un formulario con varios campos malos reporta todos.
var invoiceRules = []rule{
	{FieldCustomerID, func(f InvoiceForm) bool {
		return strings.TrimSpace(f.CustomerID) != ""
	}, msgCustomerRequired},
	{FieldAmount, func(f InvoiceForm) bool {
		return parseAmount(f.Amount) != nil
	}, msgAmountInvalid},
	{FieldStatus, func(f InvoiceForm) bool {
		return f.Status == entity.InvoiceStatusPending || f.Status == entity.InvoiceStatusPaid
	}, msgStatusInvalid},
}

// parseAmount coerciona el monto a decimal. Devuelve nil si no es numérico o
// si no es estrictamente mayor que cero.
func parseAmount(raw string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return nil
	}
	return &d
}

// ValidateInvoiceForm evalúa toda la tabla de reglas y acumula los fallos por
// campo. Solo si no hubo ninguna violación devuelve el bundle sanitizado; los
// campos que pasaron no aparecen en el mapa de errores.
func ValidateInvoiceForm(form InvoiceForm) (*SanitizedInvoice, map[string][]string) {
	var fieldErrors map[string][]string
	for _, r := range invoiceRules {
		if r.check(form) {
			continue
		}
		if fieldErrors == nil {
			fieldErrors = make(map[string][]string)
		}
		fieldErrors[r.field] = append(fieldErrors[r.field], r.message)
	}
	if fieldErrors != nil {
		return nil, fieldErrors
	}
	return &SanitizedInvoice{
		CustomerID: strings.TrimSpace(form.CustomerID),
		Amount:     *parseAmount(form.Amount),
		Status:     form.Status,
	}, nil
}
