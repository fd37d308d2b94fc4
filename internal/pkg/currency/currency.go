package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount as a Rupiah label with Indonesian
// digit grouping and no fraction digits, e.g. "Rp5.095.000".
func FormatRupiah(amount decimal.Decimal) string {
	f, _ := amount.Round(0).Float64()
	return printer.Sprintf("Rp%v", number.Decimal(f, number.MaxFractionDigits(0)))
}
