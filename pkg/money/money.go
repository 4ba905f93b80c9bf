// Package money formatea importes para recibos y vistas según la moneda.
package money

import (
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	copPrinter = message.NewPrinter(language.MustParse("es-CO"))
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
)

// Format devuelve el importe listo para mostrar.
// COP: entero agrupado es-CO seguido de " COP". USD: "$" y agrupado en-US con hasta 2 decimales.
func Format(currency entity.Currency, amount decimal.Decimal) string {
	if currency == entity.CurrencyUSD {
		v := amount.Round(2).InexactFloat64()
		return "$" + usdPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
	}
	v := amount.Round(0).InexactFloat64()
	return copPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(0))) + " COP"
}

// Qty formatea una cantidad sin ceros sobrantes (2, 1.5, 0.25).
func Qty(q decimal.Decimal) string {
	return q.String()
}
