package template

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	raw := `{
		"templateName": "Cotización_001",
		"createdAt": "2025-06-01T12:00:00Z",
		"schemaVersion": "1.0",
		"data": {
			"quoteNumber": "001",
			"companyName": "Constructora GPD",
			"companyPhone": "56912345678",
			"companyTaxId": "76.123.456-7",
			"companyEmail": "contacto@gpd.cl",
			"companyAddress": "Av. Siempre Viva 123",
			"clientName": "ACME",
			"clientSite": "Planta Norte",
			"clientContact": "J. Pérez",
			"clientEmail": "jperez@acme.cl",
			"clientAddress": "Camino Interior km 4",
			"date": "2025-06-01",
			"offerValidity": "30 días",
			"paymentTerms": "50% anticipo",
			"scopeIncluded": "Materiales y mano de obra",
			"currency": "CLP",
			"lineItems": [
				{"name": "Hormigón H25", "description": "Losa", "unit": "m3", "quantity": 10, "unitPrice": 1000}
			]
		}
	}`

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		panic(err)
	}
	return payload
}

func TestValidateTemplate_Valid(t *testing.T) {
	assert.NoError(t, ValidateTemplate(validPayload()))
}

func TestValidateTemplate_NilAndMissingData(t *testing.T) {
	assert.Error(t, ValidateTemplate(nil))

	var schemaErr *SchemaError
	err := ValidateTemplate(map[string]any{"templateName": "x"})
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "data", schemaErr.Field)

	// data present but not an object
	err = ValidateTemplate(map[string]any{"data": "not an object"})
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "data", schemaErr.Field)
}

func TestValidateTemplate_EachScalarFieldRequired(t *testing.T) {
	for _, field := range requiredFields {
		payload := validPayload()
		delete(payload["data"].(map[string]any), field)

		var schemaErr *SchemaError
		err := ValidateTemplate(payload)
		require.ErrorAs(t, err, &schemaErr, "field %s", field)
		assert.Equal(t, field, schemaErr.Field)
	}
}

func TestValidateTemplate_PresenceNotValue(t *testing.T) {
	// Empty strings satisfy the presence check.
	payload := validPayload()
	data := payload["data"].(map[string]any)
	for _, field := range requiredFields {
		data[field] = ""
	}
	assert.NoError(t, ValidateTemplate(payload))
}

func TestValidateTemplate_LineItems(t *testing.T) {
	var schemaErr *SchemaError

	payload := validPayload()
	delete(payload["data"].(map[string]any), "lineItems")
	err := ValidateTemplate(payload)
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "lineItems", schemaErr.Field)

	payload = validPayload()
	payload["data"].(map[string]any)["lineItems"] = "not an array"
	assert.Error(t, ValidateTemplate(payload))

	// Empty array is valid at the schema level.
	payload = validPayload()
	payload["data"].(map[string]any)["lineItems"] = []any{}
	assert.NoError(t, ValidateTemplate(payload))
}

func TestValidateTemplate_EachItemFieldRequired(t *testing.T) {
	for _, field := range requiredItemFields {
		payload := validPayload()
		items := payload["data"].(map[string]any)["lineItems"].([]any)
		delete(items[0].(map[string]any), field)

		var schemaErr *SchemaError
		err := ValidateTemplate(payload)
		require.ErrorAs(t, err, &schemaErr, "field %s", field)
		assert.Equal(t, fmt.Sprintf("lineItems[0].%s", field), schemaErr.Field)
	}
}
