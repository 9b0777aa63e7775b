package template

import "fmt"

// Field sets required on an imported template payload. Presence is the
// contract: an empty string satisfies the check, a missing key does not.
var (
	requiredFields = []string{
		"quoteNumber",
		"companyName",
		"companyPhone",
		"companyTaxId",
		"companyEmail",
		"companyAddress",
		"clientName",
		"clientSite",
		"clientContact",
		"clientEmail",
		"clientAddress",
		"date",
		"offerValidity",
		"paymentTerms",
		"scopeIncluded",
		"currency",
	}

	requiredItemFields = []string{
		"name",
		"description",
		"unit",
		"quantity",
		"unitPrice",
	}
)

// ValidateTemplate checks an untrusted decoded JSON value against the
// template shape. It short-circuits on the first missing field and names it
// in the returned *SchemaError; nil means the payload can be trusted.
func ValidateTemplate(raw map[string]any) error {
	if raw == nil {
		return &SchemaError{Message: "template is not an object"}
	}

	data, ok := raw["data"].(map[string]any)
	if !ok {
		return &SchemaError{Field: "data"}
	}

	for _, field := range requiredFields {
		if _, ok := data[field]; !ok {
			return &SchemaError{Field: field}
		}
	}

	rawItems, ok := data["lineItems"]
	if !ok {
		return &SchemaError{Field: "lineItems"}
	}
	items, ok := rawItems.([]any)
	if !ok {
		return &SchemaError{Message: "lineItems is not an array"}
	}

	for i, rawItem := range items {
		item, ok := rawItem.(map[string]any)
		if !ok {
			return &SchemaError{Message: fmt.Sprintf("lineItems[%d] is not an object", i)}
		}
		for _, field := range requiredItemFields {
			if _, ok := item[field]; !ok {
				return &SchemaError{Field: fmt.Sprintf("lineItems[%d].%s", i, field)}
			}
		}
	}

	return nil
}
