package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cien = decimal.NewFromInt(100)

// ToCents convierte un monto en unidades mayores a centavos: round(monto * 100).
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(cien).Round(0).IntPart()
}

// printer en-US: separador de miles y punto decimal como los espera el panel.
var printer = message.NewPrinter(language.English)

// FormatUSD presenta centavos como moneda legible, p. ej. 5000 -> "$50.00".
func FormatUSD(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100)
}
