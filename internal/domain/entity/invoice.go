package entity

import "time"

// Estados válidos de una factura. La validación garantiza que nunca se
// persiste otro valor.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice representa una factura del panel.
// Amount se guarda en centavos (round(monto * 100)), nunca cero ni negativo.
// ID y Date se asignan al crear y no se modifican después.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64     // centavos
	Status     string    // pending | paid
	Date       time.Time // fecha de emisión (solo fecha, sin hora)
}

// InvoiceRow fila del listado de facturas con los datos del cliente ya unidos.
type InvoiceRow struct {
	Invoice
	CustomerName  string
	CustomerEmail string
}
