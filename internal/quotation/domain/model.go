package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Currency codes accepted on a quotation. CLP is the local currency and
// the default; any other code is formatted as a foreign amount.
const (
	CurrencyCLP = "CLP"
	CurrencyUSD = "USD"
)

// LineItem is one priced row within a quotation. The line total is always
// derived as Quantity * UnitPrice and never stored.
type LineItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Quotation is a single commercial offer as edited in the form. It is a
// plain value: the rendering and template engines never mutate it.
type Quotation struct {
	QuoteNumber    string `json:"quoteNumber"`
	CompanyName    string `json:"companyName"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyTaxID   string `json:"companyTaxId"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyAddress string `json:"companyAddress"`

	ClientName    string `json:"clientName"`
	ClientSite    string `json:"clientSite"`
	ClientContact string `json:"clientContact"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`

	Date          string `json:"date"`
	OfferValidity string `json:"offerValidity"`
	PaymentTerms  string `json:"paymentTerms"`
	ScopeIncluded string `json:"scopeIncluded"`
	Currency      string `json:"currency"`

	LineItems []LineItem `json:"lineItems"`

	// Logo does not round-trip through templates; the codec strips it.
	Logo []byte `json:"logo,omitempty"`
}

// QuotationRecord is the persisted shape of a quotation, owned by a user.
type QuotationRecord struct {
	ID     snowflake.ID `gorm:"primaryKey"`
	UserID string       `gorm:"column:user_id;type:text;not null;index"`

	QuoteNumber    string `gorm:"column:quote_number;type:text;not null"`
	CompanyName    string `gorm:"column:company_name;type:text"`
	CompanyPhone   string `gorm:"column:company_phone;type:text"`
	CompanyTaxID   string `gorm:"column:company_tax_id;type:text"`
	CompanyEmail   string `gorm:"column:company_email;type:text"`
	CompanyAddress string `gorm:"column:company_address;type:text"`

	ClientName    string `gorm:"column:client_name;type:text"`
	ClientSite    string `gorm:"column:client_site;type:text"`
	ClientContact string `gorm:"column:client_contact;type:text"`
	ClientEmail   string `gorm:"column:client_email;type:text"`
	ClientAddress string `gorm:"column:client_address;type:text"`

	Date          string `gorm:"column:quote_date;type:text"`
	OfferValidity string `gorm:"column:offer_validity;type:text"`
	PaymentTerms  string `gorm:"column:payment_terms;type:text"`
	ScopeIncluded string `gorm:"column:scope_included;type:text"`
	Currency      string `gorm:"column:currency;type:text;not null"`

	LineItems datatypes.JSON `gorm:"column:line_items"`

	CreatedAt  time.Time `gorm:"not null"`
	ModifiedAt time.Time `gorm:"column:modified_at;not null"`
}

func (QuotationRecord) TableName() string { return "quotations" }

// NewRecord builds a persisted record from a quotation value. The logo never
// reaches storage, matching the template codec's exclusion.
func NewRecord(id snowflake.ID, userID string, q Quotation, now time.Time) (*QuotationRecord, error) {
	items := q.LineItems
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	currency := q.Currency
	if currency == "" {
		currency = CurrencyCLP
	}

	return &QuotationRecord{
		ID:             id,
		UserID:         userID,
		QuoteNumber:    q.QuoteNumber,
		CompanyName:    q.CompanyName,
		CompanyPhone:   q.CompanyPhone,
		CompanyTaxID:   q.CompanyTaxID,
		CompanyEmail:   q.CompanyEmail,
		CompanyAddress: q.CompanyAddress,
		ClientName:     q.ClientName,
		ClientSite:     q.ClientSite,
		ClientContact:  q.ClientContact,
		ClientEmail:    q.ClientEmail,
		ClientAddress:  q.ClientAddress,
		Date:           q.Date,
		OfferValidity:  q.OfferValidity,
		PaymentTerms:   q.PaymentTerms,
		ScopeIncluded:  q.ScopeIncluded,
		Currency:       currency,
		LineItems:      datatypes.JSON(payload),
		CreatedAt:      now,
		ModifiedAt:     now,
	}, nil
}

// Quotation converts the record back into the form value.
func (r *QuotationRecord) Quotation() (Quotation, error) {
	var items []LineItem
	if len(r.LineItems) > 0 {
		if err := json.Unmarshal(r.LineItems, &items); err != nil {
			return Quotation{}, err
		}
	}

	return Quotation{
		QuoteNumber:    r.QuoteNumber,
		CompanyName:    r.CompanyName,
		CompanyPhone:   r.CompanyPhone,
		CompanyTaxID:   r.CompanyTaxID,
		CompanyEmail:   r.CompanyEmail,
		CompanyAddress: r.CompanyAddress,
		ClientName:     r.ClientName,
		ClientSite:     r.ClientSite,
		ClientContact:  r.ClientContact,
		ClientEmail:    r.ClientEmail,
		ClientAddress:  r.ClientAddress,
		Date:           r.Date,
		OfferValidity:  r.OfferValidity,
		PaymentTerms:   r.PaymentTerms,
		ScopeIncluded:  r.ScopeIncluded,
		Currency:       r.Currency,
		LineItems:      items,
	}, nil
}
