package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewOrderValidator validates paid order messages. Emails are checked with the
// same rule checkout applies, so every captured order passes.
func NewOrderValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("store_email", func(fl validator.FieldLevel) bool {
		return checkout.ValidateEmail(fl.Field().String()).Valid
	})
	return validate
}

// Order is a paid order, used both as the Kafka message and the HTTP response
type Order struct {
	OrderNumber     string    `json:"order_number" validate:"required,max=32"`
	TrackingNumber  string    `json:"tracking_number" validate:"required,max=32"`
	CustomerEmail   string    `json:"customer_email" validate:"required,store_email"`
	Locale          string    `json:"locale" validate:"required,oneof=en ar"`
	Status          string    `json:"status" validate:"required"`
	Currency        string    `json:"currency" validate:"required,len=3"`
	CreatedAt       time.Time `json:"created_at" validate:"required"`
	Items           []Item    `json:"items" validate:"required,min=1,dive"`
	Totals          Totals    `json:"totals" validate:"required"`
	ShippingAddress Address   `json:"shipping_address" validate:"required"`
	BillingAddress  *Address  `json:"billing_address,omitempty" validate:"omitempty"`
	Payment         Payment   `json:"payment" validate:"required"`
}

// Item товар в заказе
type Item struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	UnitPrice string `json:"unit_price" validate:"required,numeric"`
}

// Totals суммы заказа в местной валюте
type Totals struct {
	Subtotal string `json:"subtotal" validate:"required,numeric"`
	Tax      string `json:"tax" validate:"required,numeric"`
	Shipping string `json:"shipping" validate:"required,numeric"`
	Total    string `json:"total" validate:"required,numeric"`
}

// Address адрес доставки или оплаты
type Address struct {
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required,numeric,len=8"`
	Email         string `json:"email,omitempty" validate:"omitempty,store_email"`
	StreetAddress string `json:"street_address" validate:"required"`
	Wilayat       string `json:"wilayat" validate:"required"`
	Governorate   string `json:"governorate" validate:"required"`
	PostalCode    string `json:"postal_code,omitempty"`
	CountryCode   string `json:"country_code" validate:"required,iso3166_1_alpha2"`
}

// Payment информация об оплате
type Payment struct {
	Provider       string    `json:"provider" validate:"required"`
	GatewayOrderID string    `json:"gateway_order_id" validate:"required"`
	CaptureID      string    `json:"capture_id" validate:"required"`
	Status         string    `json:"status" validate:"required"`
	Currency       string    `json:"currency" validate:"required,len=3"`
	Amount         string    `json:"amount" validate:"required,numeric"`
	ExchangeRate   string    `json:"exchange_rate" validate:"required,numeric"`
	PayerID        string    `json:"payer_id,omitempty"`
	PayerEmail     string    `json:"payer_email,omitempty"`
	CapturedAt     time.Time `json:"captured_at" validate:"required"`
}

// PaymentOrderResponse описывает заказ в платёжном шлюзе
type PaymentOrderResponse struct {
	GatewayOrderID string `json:"gateway_order_id"`
	OrderNumber    string `json:"order_number,omitempty"`
	Status         string `json:"status"`
	ApproveURL     string `json:"approve_url,omitempty"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	LocalTotal     string `json:"local_total,omitempty"`
	LocalCurrency  string `json:"local_currency"`
}

// PaymentErrorResponse is returned for failed checkout calls. Message is localized.
type PaymentErrorResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	DebugID string            `json:"debug_id,omitempty"`
}

const (
	localPlaces      = 3
	settlementPlaces = 2
)

func PaymentOrderEntityToJSON(p entities.PaymentOrder) PaymentOrderResponse {
	res := PaymentOrderResponse{
		GatewayOrderID: p.GatewayOrderID,
		OrderNumber:    p.OrderNumber,
		Status:         p.Status,
		ApproveURL:     p.ApproveURL,
		Amount:         p.Amount.StringFixed(settlementPlaces),
		Currency:       p.Currency,
		LocalCurrency:  p.LocalCurrency,
	}
	if !p.LocalTotal.IsZero() {
		res.LocalTotal = p.LocalTotal.StringFixed(localPlaces)
	}
	return res
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		FullName:      a.FullName,
		Phone:         a.Phone,
		Email:         a.Email,
		StreetAddress: a.StreetAddress,
		Wilayat:       a.Wilayat,
		Governorate:   a.Governorate,
		PostalCode:    a.PostalCode,
		CountryCode:   a.CountryCode,
	}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		FullName:      a.FullName,
		Phone:         a.Phone,
		Email:         a.Email,
		StreetAddress: a.StreetAddress,
		Wilayat:       a.Wilayat,
		Governorate:   a.Governorate,
		PostalCode:    a.PostalCode,
		CountryCode:   a.CountryCode,
	}
}

func PaymentEntityToJSON(p entities.Payment) Payment {
	return Payment{
		Provider:       p.Provider,
		GatewayOrderID: p.GatewayOrderID,
		CaptureID:      p.CaptureID,
		Status:         p.Status,
		Currency:       p.Currency,
		Amount:         p.Amount.StringFixed(settlementPlaces),
		ExchangeRate:   p.ExchangeRate.String(),
		PayerID:        p.PayerID,
		PayerEmail:     p.PayerEmail,
		CapturedAt:     p.CapturedAt,
	}
}

func PaymentJSONToEntity(p Payment) entities.Payment {
	return entities.Payment{
		Provider:       p.Provider,
		GatewayOrderID: p.GatewayOrderID,
		CaptureID:      p.CaptureID,
		Status:         p.Status,
		Currency:       p.Currency,
		Amount:         decimal.RequireFromString(p.Amount),
		ExchangeRate:   decimal.RequireFromString(p.ExchangeRate),
		PayerID:        p.PayerID,
		PayerEmail:     p.PayerEmail,
		CapturedAt:     p.CapturedAt,
	}
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice.StringFixed(localPlaces),
	}
}

func ItemJSONToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: decimal.RequireFromString(i.UnitPrice),
	}
}

func TotalsEntityToJSON(t entities.Totals) Totals {
	return Totals{
		Subtotal: t.Subtotal.StringFixed(localPlaces),
		Tax:      t.Tax.StringFixed(localPlaces),
		Shipping: t.Shipping.StringFixed(localPlaces),
		Total:    t.Total.StringFixed(localPlaces),
	}
}

func TotalsJSONToEntity(t Totals) entities.Totals {
	return entities.Totals{
		Subtotal: decimal.RequireFromString(t.Subtotal),
		Tax:      decimal.RequireFromString(t.Tax),
		Shipping: decimal.RequireFromString(t.Shipping),
		Total:    decimal.RequireFromString(t.Total),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	order := Order{
		OrderNumber:     o.OrderNumber,
		TrackingNumber:  o.TrackingNumber,
		CustomerEmail:   o.CustomerEmail,
		Locale:          string(o.Locale),
		Status:          string(o.Status),
		Currency:        o.Currency,
		CreatedAt:       o.CreatedAt,
		Items:           items,
		Totals:          TotalsEntityToJSON(o.Totals),
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		Payment:         PaymentEntityToJSON(o.Payment),
	}
	if o.BillingAddress != nil {
		billing := AddressEntityToJSON(*o.BillingAddress)
		order.BillingAddress = &billing
	}
	return order
}

// OrderJSONToEntity expects an order that passed validation, amounts must be numeric.
func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	order := entities.Order{
		OrderNumber:     o.OrderNumber,
		TrackingNumber:  o.TrackingNumber,
		CustomerEmail:   o.CustomerEmail,
		Locale:          entities.Locale(o.Locale),
		Status:          entities.OrderStatus(o.Status),
		Currency:        o.Currency,
		CreatedAt:       o.CreatedAt,
		Items:           items,
		Totals:          TotalsJSONToEntity(o.Totals),
		ShippingAddress: AddressJSONToEntity(o.ShippingAddress),
		Payment:         PaymentJSONToEntity(o.Payment),
	}
	if o.BillingAddress != nil {
		billing := AddressJSONToEntity(*o.BillingAddress)
		order.BillingAddress = &billing
	}
	return order
}
