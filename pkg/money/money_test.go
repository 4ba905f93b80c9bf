package money

import (
	"strings"
	"testing"
	"unicode"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func TestFormat_COPSinDecimales(t *testing.T) {
	got := Format(entity.CurrencyCOP, decimal.NewFromFloat(1234567.4))
	assert.True(t, strings.HasSuffix(got, " COP"), got)
	assert.Equal(t, "1234567", digits(got))

	assert.Equal(t, "120 COP", Format(entity.CurrencyCOP, decimal.NewFromInt(120)))
}

func TestFormat_USDConDosDecimales(t *testing.T) {
	assert.Equal(t, "$1,234.56", Format(entity.CurrencyUSD, decimal.RequireFromString("1234.561")))
	assert.Equal(t, "$12.5", Format(entity.CurrencyUSD, decimal.RequireFromString("12.50")))
	assert.Equal(t, "$0", Format(entity.CurrencyUSD, decimal.Zero))
}

func TestQty(t *testing.T) {
	assert.Equal(t, "2", Qty(decimal.RequireFromString("2.000")))
	assert.Equal(t, "1.5", Qty(decimal.RequireFromString("1.500")))
}
