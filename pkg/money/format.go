// Package money formatea importes en rupias para reportes y mensajes SMS.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR devuelve el importe con símbolo y dos decimales, ej: "₹1,234.50".
func FormatINR(d decimal.Decimal) string {
	return "₹" + printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatQuantity formatea litros u otras cantidades sin decimales forzados.
func FormatQuantity(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}
