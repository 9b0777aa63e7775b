// Package pricing implements the quotation money model: line totals,
// subtotal, VAT and grand total, plus locale-aware currency display.
// Every function is pure so callers can recompute on each form edit.
package pricing

import (
	"github.com/instacotiza/cotiza/internal/quotation/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// VATRate is the Chilean IVA applied to every quotation regardless of
// currency. Keep in sync with the "IVA (19%)" label in the document builder.
const VATRate = 0.19

// Totals are always derived from line items, never persisted.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grandTotal"`
}

var chilean = message.NewPrinter(language.MustParse("es-CL"))

// LineTotal returns quantity times unit price for a single row.
func LineTotal(item domain.LineItem) float64 {
	return item.Quantity * item.UnitPrice
}

// Subtotal sums the line totals of all items; zero for an empty list.
func Subtotal(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item)
	}
	return sum
}

// Tax returns the VAT over the subtotal.
func Tax(items []domain.LineItem) float64 {
	return Subtotal(items) * VATRate
}

// GrandTotal returns subtotal plus VAT.
func GrandTotal(items []domain.LineItem) float64 {
	return Subtotal(items) + Tax(items)
}

// ComputeTotals derives all three amounts in one pass over the items.
func ComputeTotals(items []domain.LineItem) Totals {
	subtotal := Subtotal(items)
	tax := subtotal * VATRate
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}

// FormatCurrency renders an amount with es-CL conventions: "." as the
// thousands separator and no fractional digits. CLP uses the local "$"
// symbol; any other code falls back to the generic foreign format.
func FormatCurrency(amount float64, currencyCode string) string {
	digits := chilean.Sprint(number.Decimal(amount,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))
	if currencyCode == domain.CurrencyCLP {
		return "$" + digits
	}
	return "US$" + digits
}
