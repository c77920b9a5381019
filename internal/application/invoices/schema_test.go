package invoices

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Formulario completamente válido → bundle sanitizado, sin errores.
func TestValidateInvoiceForm_FormularioValido(t *testing.T) {
	sanitized, fieldErrors := ValidateInvoiceForm(InvoiceForm{
		CustomerID: "c1",
		Amount:     "50",
		Status:     "paid",
	})

	require.Nil(t, fieldErrors, "no debe haber errores de campo")
	require.NotNil(t, sanitized)
	assert.Equal(t, "c1", sanitized.CustomerID)
	assert.True(t, sanitized.Amount.Equal(decimal.NewFromInt(50)), "el monto debe quedar tipado como 50")
	assert.Equal(t, "paid", sanitized.Status)
}

// Monto cero, negativo o no numérico → mensaje exacto en amount.
func TestValidateInvoiceForm_MontoInvalido(t *testing.T) {
	for _, raw := range []string{"0", "-5", "abc", ""} {
		sanitized, fieldErrors := ValidateInvoiceForm(InvoiceForm{
			CustomerID: "c1",
			Amount:     raw,
			Status:     "pending",
		})

		require.Nil(t, sanitized, "monto %q no debe producir bundle", raw)
		require.Contains(t, fieldErrors, FieldAmount)
		assert.Equal(t, []string{"Please enter a number greater than $0"}, fieldErrors[FieldAmount])
		// Los campos que pasaron no aparecen en el mapa.
		assert.NotContains(t, fieldErrors, FieldCustomerID)
		assert.NotContains(t, fieldErrors, FieldStatus)
	}
}

// Estado fuera de {pending, paid} → mensaje exacto en status.
func TestValidateInvoiceForm_EstadoInvalido(t *testing.T) {
	for _, raw := range []string{"overdue", "PAID", "Pending", ""} {
		sanitized, fieldErrors := ValidateInvoiceForm(InvoiceForm{
			CustomerID: "c1",
			Amount:     "50",
			Status:     raw,
		})

		require.Nil(t, sanitized, "estado %q no debe producir bundle", raw)
		require.Contains(t, fieldErrors, FieldStatus)
		assert.Equal(t, []string{"Please select an invoice status."}, fieldErrors[FieldStatus])
	}
}

// Cliente vacío o solo espacios → mensaje en customerId.
func TestValidateInvoiceForm_ClienteRequerido(t *testing.T) {
	sanitized, fieldErrors := ValidateInvoiceForm(InvoiceForm{
		CustomerID: "   ",
		Amount:     "50",
		Status:     "paid",
	})

	require.Nil(t, sanitized)
	assert.Equal(t, []string{"Please select a customer."}, fieldErrors[FieldCustomerID])
}

// Todas las reglas se evalúan: un formulario vacío reporta los tres campos.
func TestValidateInvoiceForm_AcumulaTodosLosFallos(t *testing.T) {
	sanitized, fieldErrors := ValidateInvoiceForm(InvoiceForm{})

	require.Nil(t, sanitized)
	assert.Len(t, fieldErrors, 3, "deben fallar customerId, amount y status a la vez")
	assert.Contains(t, fieldErrors, FieldCustomerID)
	assert.Contains(t, fieldErrors, FieldAmount)
	assert.Contains(t, fieldErrors, FieldStatus)
}

// Montos decimales se aceptan y conservan su valor exacto.
func TestValidateInvoiceForm_MontoDecimal(t *testing.T) {
	sanitized, fieldErrors := ValidateInvoiceForm(InvoiceForm{
		CustomerID: "c1",
		Amount:     "10.505",
		Status:     "pending",
	})

	require.Nil(t, fieldErrors)
	expected, _ := decimal.NewFromString("10.505")
	assert.True(t, sanitized.Amount.Equal(expected))
}
