package document

import (
	"net/http"
	"strconv"

	"github.com/instacotiza/cotiza/internal/pricing"
	"github.com/instacotiza/cotiza/internal/quotation/domain"
)

// Grid widths for the three tables, on the exporter's 12-column layout.
var (
	clientTableWidths = []int{4, 8}
	itemsTableWidths  = []int{1, 2, 3, 1, 1, 2, 2}
	totalsTableWidths = []int{6, 3, 3}
)

const spacerHeight = 6

// Build assembles the block tree for a quotation. Section order is fixed.
// Line totals are recomputed here from quantity and unit price; totals come
// from the caller so the same numbers the form displayed are rendered.
// A quotation with zero line items still builds: the items table carries
// only its header row.
func Build(q domain.Quotation, totals pricing.Totals) *Document {
	currency := q.Currency
	if currency == "" {
		currency = domain.CurrencyCLP
	}

	doc := &Document{
		Page:   LetterGeometry(),
		Header: buildHeader(q),
		Footer: buildFooter(q),
		Meta: Meta{
			QuoteNumber: q.QuoteNumber,
			ClientName:  q.ClientName,
			ClientSite:  q.ClientSite,
		},
	}

	doc.Blocks = []Block{
		TitleBlock{Text: "Cotización N°" + q.QuoteNumber},
		SeparatorBlock{},
		SubtitleBlock{Text: "Oferta Comercial"},
		buildClientTable(q),
		SpacerBlock{Height: spacerHeight},
		buildItemsTable(q.LineItems, currency),
		SpacerBlock{Height: spacerHeight},
		buildTotalsTable(totals, currency),
		SpacerBlock{Height: spacerHeight},
		buildTerms(q),
	}

	return doc
}

func buildHeader(q domain.Quotation) HeaderBlock {
	header := HeaderBlock{
		CompanyName: q.CompanyName,
		Lines: []string{
			"RUT: " + q.CompanyTaxID,
			"Tel: " + q.CompanyPhone,
			"Email: " + q.CompanyEmail,
			"Dirección: " + q.CompanyAddress,
		},
	}

	// An unrecognized or absent logo omits the logo cell rather than
	// failing the whole build.
	if ext := sniffImage(q.Logo); ext != "" {
		header.Logo = q.Logo
		header.LogoExt = ext
	}

	return header
}

func buildFooter(q domain.Quotation) FooterBlock {
	return FooterBlock{
		Lines: []string{
			q.CompanyName + " - RUT: " + q.CompanyTaxID,
			q.CompanyEmail + " - Tel: " + q.CompanyPhone,
		},
	}
}

func buildClientTable(q domain.Quotation) TableBlock {
	rows := [][]Cell{
		{label("Fecha"), value(q.Date)},
		{label("Cliente"), value(q.ClientName)},
		{label("Contacto"), value(q.ClientContact)},
		{label("Obra"), value(q.ClientSite)},
		{label("Dirección Obra"), value(q.ClientAddress)},
		{label("Email"), value(q.ClientEmail)},
	}
	return TableBlock{Widths: clientTableWidths, Rows: rows}
}

func buildItemsTable(items []domain.LineItem, currency string) TableBlock {
	table := TableBlock{
		Widths: itemsTableWidths,
		Header: []Cell{
			{Text: "ÍTEM", Bold: true, Align: AlignCenter},
			{Text: "PRODUCTO", Bold: true, Align: AlignCenter},
			{Text: "DESCRIPCIÓN", Bold: true, Align: AlignCenter},
			{Text: "UNID.", Bold: true, Align: AlignCenter},
			{Text: "CANT.", Bold: true, Align: AlignCenter},
			{Text: "VALOR UNIT.", Bold: true, Align: AlignCenter},
			{Text: "TOTAL", Bold: true, Align: AlignCenter},
		},
		Rows: make([][]Cell, 0, len(items)),
	}

	for i, item := range items {
		table.Rows = append(table.Rows, []Cell{
			{Text: strconv.Itoa(i + 1), Align: AlignCenter},
			{Text: item.Name},
			{Text: item.Description},
			{Text: item.Unit, Align: AlignCenter},
			{Text: formatQuantity(item.Quantity), Align: AlignCenter},
			{Text: pricing.FormatCurrency(item.UnitPrice, currency), Align: AlignRight},
			{Text: pricing.FormatCurrency(pricing.LineTotal(item), currency), Align: AlignRight},
		})
	}

	return table
}

func buildTotalsTable(totals pricing.Totals, currency string) TableBlock {
	rows := [][]Cell{
		{{}, {Text: "SUBTOTAL (NETO)", Bold: true, Align: AlignRight}, {Text: pricing.FormatCurrency(totals.Subtotal, currency), Align: AlignRight}},
		{{}, {Text: "IVA (19%)", Bold: true, Align: AlignRight}, {Text: pricing.FormatCurrency(totals.Tax, currency), Align: AlignRight}},
		{{}, {Text: "TOTAL", Bold: true, Align: AlignRight}, {Text: pricing.FormatCurrency(totals.GrandTotal, currency), Bold: true, Align: AlignRight}},
	}
	return TableBlock{
		Widths:           totalsTableWidths,
		Rows:             rows,
		EmphasizeLastRow: true,
	}
}

func buildTerms(q domain.Quotation) TermsBlock {
	return TermsBlock{
		Heading: "Condiciones Comerciales",
		Lines: []string{
			"Valores netos. No Incluyen IVA.",
			"Validez Oferta: " + q.OfferValidity,
			"Forma de Pago: " + q.PaymentTerms,
			"El presupuesto incluye: " + q.ScopeIncluded,
		},
	}
}

func label(text string) Cell {
	return Cell{Text: text, Bold: true}
}

func value(text string) Cell {
	return Cell{Text: text}
}

func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}

func sniffImage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	switch http.DetectContentType(data) {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	default:
		return ""
	}
}
