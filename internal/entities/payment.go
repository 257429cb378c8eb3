package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const ProviderPayPal = "paypal"

// Payment holds the gateway side of a captured order. Amounts are in the
// settlement currency.
type Payment struct {
	Provider       string
	GatewayOrderID string
	CaptureID      string
	Status         string
	Currency       string
	Amount         decimal.Decimal
	ExchangeRate   decimal.Decimal
	PayerID        string
	PayerEmail     string
	CapturedAt     time.Time
}

// PendingCheckout is everything needed to finalize an order once the gateway
// order is approved and captured.
type PendingCheckout struct {
	GatewayOrderID   string
	OrderNumber      string
	CustomerEmail    string
	Locale           Locale
	Items            []Item
	Totals           Totals
	ShippingAddress  Address
	BillingAddress   *Address
	SettlementAmount decimal.Decimal
	Currency         string
	ExchangeRate     decimal.Decimal
	CreatedAt        time.Time
}

func (p *PendingCheckout) Marshal() ([]byte, error) {
	return gobEncode(p)
}

func (p *PendingCheckout) Unmarshal(data []byte) error {
	return gobDecode(data, p)
}

// PaymentOrder is what the storefront gets back for a gateway order.
type PaymentOrder struct {
	GatewayOrderID string
	OrderNumber    string
	Status         string
	ApproveURL     string
	Amount         decimal.Decimal
	Currency       string
	LocalTotal     decimal.Decimal
	LocalCurrency  string
}
