// Package template serializes quotations to portable JSON templates and
// parses them back, validating untrusted imports against a strict shape.
package template

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/instacotiza/cotiza/internal/quotation/domain"
)

// SchemaVersion stamps every exported template. Bump only with a migration
// path for existing template files.
const SchemaVersion = "1.0"

// Template is a portable snapshot of a quotation. Immutable once written to
// a file; consumed once at import time.
type Template struct {
	TemplateName  string           `json:"templateName"`
	CreatedAt     time.Time        `json:"createdAt"`
	SchemaVersion string           `json:"schemaVersion"`
	Data          domain.Quotation `json:"data"`
}

// Encode wraps a quotation into a template. The logo cannot round-trip
// through JSON and is stripped. An empty name defaults to a name derived
// from the quote number.
func Encode(q domain.Quotation, templateName string) Template {
	q.Logo = nil
	if q.LineItems == nil {
		q.LineItems = []domain.LineItem{}
	}

	if templateName == "" {
		if q.QuoteNumber != "" {
			templateName = "Cotización_" + q.QuoteNumber
		} else {
			templateName = "Cotización_Template"
		}
	}

	return Template{
		TemplateName:  templateName,
		CreatedAt:     time.Now().UTC(),
		SchemaVersion: SchemaVersion,
		Data:          q,
	}
}

// Marshal renders the template as the two-space-indented JSON users see in
// exported files.
func Marshal(t Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// Decode parses and validates raw template bytes. Malformed JSON yields a
// *ParseError, a structurally invalid payload a *SchemaError; on success the
// embedded quotation is returned with every missing optional value
// defaulted. Decode never mutates caller state: replace-the-form
// confirmation stays with the caller.
func Decode(raw []byte) (domain.Quotation, error) {
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return domain.Quotation{}, &ParseError{Err: err}
	}

	if err := ValidateTemplate(generic); err != nil {
		return domain.Quotation{}, err
	}

	// Validated above: "data" is an object and "lineItems" is an array.
	data := generic["data"].(map[string]any)
	return quotationFromPayload(data), nil
}

// TemplateFileName derives the suggested download name for an exported
// template, falling back to a timestamp when the quote number is blank.
func TemplateFileName(q domain.Quotation) string {
	if q.QuoteNumber != "" {
		return "plantilla_cotizacion_" + q.QuoteNumber + ".json"
	}
	return fmt.Sprintf("plantilla_cotizacion_%d.json", time.Now().UnixMilli())
}

func quotationFromPayload(data map[string]any) domain.Quotation {
	q := domain.Quotation{
		QuoteNumber:    stringField(data, "quoteNumber"),
		CompanyName:    stringField(data, "companyName"),
		CompanyPhone:   stringField(data, "companyPhone"),
		CompanyTaxID:   stringField(data, "companyTaxId"),
		CompanyEmail:   stringField(data, "companyEmail"),
		CompanyAddress: stringField(data, "companyAddress"),
		ClientName:     stringField(data, "clientName"),
		ClientSite:     stringField(data, "clientSite"),
		ClientContact:  stringField(data, "clientContact"),
		ClientEmail:    stringField(data, "clientEmail"),
		ClientAddress:  stringField(data, "clientAddress"),
		Date:           stringField(data, "date"),
		OfferValidity:  stringField(data, "offerValidity"),
		PaymentTerms:   stringField(data, "paymentTerms"),
		ScopeIncluded:  stringField(data, "scopeIncluded"),
		Currency:       stringField(data, "currency"),
	}

	if q.Currency == "" {
		q.Currency = domain.CurrencyCLP
	}

	items, _ := data["lineItems"].([]any)
	q.LineItems = make([]domain.LineItem, 0, len(items))
	for _, rawItem := range items {
		item, _ := rawItem.(map[string]any)
		q.LineItems = append(q.LineItems, domain.LineItem{
			Name:        stringField(item, "name"),
			Description: stringField(item, "description"),
			Unit:        stringField(item, "unit"),
			Quantity:    numberField(item, "quantity"),
			UnitPrice:   numberField(item, "unitPrice"),
		})
	}
	if len(q.LineItems) == 0 {
		q.LineItems = []domain.LineItem{{}}
	}

	return q
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func numberField(m map[string]any, key string) float64 {
	if f, ok := m[key].(float64); ok {
		return f
	}
	return 0
}
