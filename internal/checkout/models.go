package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var countryValidate = validator.New()

// OrderItem is a cart line as submitted by the storefront.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Amount `json:"unit_price"`
}

// Totals is the breakdown the storefront claims for the cart, in local currency.
type Totals struct {
	Subtotal Amount `json:"subtotal"`
	Tax      Amount `json:"tax"`
	Shipping Amount `json:"shipping"`
	Total    Amount `json:"total"`
}

type AddressInput struct {
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	StreetAddress string     `json:"street_address"`
	Wilayat       string     `json:"wilayat"`
	Governorate   string     `json:"governorate"`
	PostalCode    string     `json:"postal_code,omitempty"`
	Country       CountryRef `json:"country"`
}

type PaymentOrderRequest struct {
	Items           []OrderItem   `json:"items"`
	Totals          Totals        `json:"totals"`
	CustomerEmail   string        `json:"customer_email"`
	ShippingAddress AddressInput  `json:"shipping_address"`
	BillingAddress  *AddressInput `json:"billing_address,omitempty"`
	Locale          string        `json:"locale,omitempty"`
}

type CountryKind int

const (
	CountryUnset CountryKind = iota
	CountryByID
	CountryExpanded
)

// DefaultCountryCode is used whenever the CMS did not expand the country relation.
const DefaultCountryCode = "OM"

// CountryRef is the country of an address. The CMS returns it either as a bare
// relation id (number or string) or as an expanded object.
type CountryRef struct {
	Kind CountryKind
	ID   string
	Code string
	Name string
}

type expandedCountry struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Code string          `json:"code"`
	Name string          `json:"name"`
}

func (c *CountryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = CountryRef{}
		return nil
	}

	switch data[0] {
	case '{':
		var obj expandedCountry
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("invalid country object: %w", err)
		}
		*c = CountryRef{
			Kind: CountryExpanded,
			ID:   strings.Trim(string(obj.ID), `"`),
			Code: strings.ToUpper(strings.TrimSpace(obj.Code)),
			Name: strings.TrimSpace(obj.Name),
		}
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*c = CountryRef{Kind: CountryByID, ID: id}
	default:
		var id json.Number
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("country must be an id or an object: %w", err)
		}
		*c = CountryRef{Kind: CountryByID, ID: id.String()}
	}
	return nil
}

func (c CountryRef) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CountryExpanded:
		return json.Marshal(map[string]string{"id": c.ID, "code": c.Code, "name": c.Name})
	case CountryByID:
		return json.Marshal(c.ID)
	default:
		return []byte("null"), nil
	}
}

// CountryCode returns the ISO 3166-1 alpha-2 code of the country. Bare ids and
// unknown codes cannot be resolved without the CMS, the store only ships inside
// Oman so they fall back to OM.
func (c CountryRef) CountryCode() string {
	if c.Kind == CountryExpanded && countryValidate.Var(c.Code, "iso3166_1_alpha2") == nil {
		return c.Code
	}
	return DefaultCountryCode
}

// FieldResult is the outcome of a single field validator.
type FieldResult struct {
	Valid     bool
	Error     string
	Formatted string
}

// ValidationResult is valid only when Errors is empty.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func newValidationResult(errs map[string]string) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
