package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/instacotiza/cotiza/internal/export"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"github.com/instacotiza/cotiza/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		log:      zap.NewNop(),
		exporter: export.NewExporter(zap.NewNop()),
	}

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	s.RegisterRoutes(r)
	return r
}

func serverQuotation() quotationdomain.Quotation {
	return quotationdomain.Quotation{
		QuoteNumber:    "001",
		CompanyName:    "Constructora GPD",
		CompanyPhone:   "56912345678",
		CompanyTaxID:   "76.123.456-7",
		CompanyEmail:   "contacto@gpd.cl",
		CompanyAddress: "Av. Siempre Viva 123",
		ClientName:     "ACME",
		ClientSite:     "Planta Norte",
		ClientContact:  "J. Pérez",
		ClientEmail:    "jperez@acme.cl",
		ClientAddress:  "Camino Interior km 4",
		Date:           "2025-06-01",
		OfferValidity:  "30 días",
		PaymentTerms:   "50% anticipo",
		ScopeIncluded:  "Materiales y mano de obra",
		Currency:       quotationdomain.CurrencyCLP,
		LineItems: []quotationdomain.LineItem{
			{Name: "Hormigón H25", Description: "Losa", Unit: "m3", Quantity: 10, UnitPrice: 1000},
		},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportTemplate(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(gin.H{
		"templateName": "Mi Plantilla",
		"quotation":    serverQuotation(),
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/v1/templates/export", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "plantilla_cotizacion_001.json")

	var tpl template.Template
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tpl))
	assert.Equal(t, "Mi Plantilla", tpl.TemplateName)
	assert.Equal(t, template.SchemaVersion, tpl.SchemaVersion)
	assert.Equal(t, "001", tpl.Data.QuoteNumber)
}

func TestImportTemplate(t *testing.T) {
	r := newTestRouter(t)

	payload, err := template.Marshal(template.Encode(serverQuotation(), ""))
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/v1/templates/import", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data quotationdomain.Quotation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "001", resp.Data.QuoteNumber)
	assert.Equal(t, "jperez@acme.cl", resp.Data.ClientEmail)
}

func TestImportTemplate_MalformedJSON(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/templates/import", []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "parse_error", resp.Error.Type)
}

func TestImportTemplate_MissingField(t *testing.T) {
	r := newTestRouter(t)

	payload, err := template.Marshal(template.Encode(serverQuotation(), ""))
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(payload, &generic))
	delete(generic["data"].(map[string]any), "clientEmail")
	raw, err := json.Marshal(generic)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/v1/templates/import", raw)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Equal(t, "clientEmail", resp.Error.Field)
}

func TestExportArtifact(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(serverQuotation())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/v1/quotations/export", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "quote.001_ACME_Planta Norte.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportArtifact_NoLineItems(t *testing.T) {
	r := newTestRouter(t)

	q := serverQuotation()
	q.LineItems = nil
	body, err := json.Marshal(q)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/v1/quotations/export", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error.Type)
	assert.Equal(t, "no_line_items", resp.Error.Message)
}
