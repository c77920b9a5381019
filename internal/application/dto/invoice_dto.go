package dto

// InvoiceFormRequest campos crudos del formulario de factura, tal como los envía
// el cliente (todos como texto; la validación los tipa).
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// InvoiceResponse salida de una factura individual (formulario de edición).
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"` // centavos
	Status     string `json:"status"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// InvoiceRowResponse fila del listado de facturas con datos del cliente.
type InvoiceRowResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	Amount          int64  `json:"amount"` // centavos
	AmountFormatted string `json:"amount_formatted"`
	Status          string `json:"status"`
	Date            string `json:"date"` // YYYY-MM-DD
}

// CustomerResponse salida de un cliente (selector del formulario).
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}
