package product

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Indonesian grouping ("Rp 1.500.000") comes from the locale printer, not
// from hand-rolled separator logic.
var idPrinter = message.NewPrinter(language.Indonesian)

// FormatAmount renders an amount with the given currency symbol.
func FormatAmount(symbol string, amount int) string {
	return idPrinter.Sprintf("%s %d", symbol, amount)
}
