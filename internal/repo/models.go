package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderNumber    string          `db:"order_number"`
	TrackingNumber string          `db:"tracking_number"`
	CustomerEmail  string          `db:"customer_email"`
	Locale         string          `db:"locale"`
	Status         string          `db:"status"`
	Currency       string          `db:"currency"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	Tax            decimal.Decimal `db:"tax"`
	Shipping       decimal.Decimal `db:"shipping"`
	Total          decimal.Decimal `db:"total"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Item struct {
	OrderNumber string          `db:"order_number"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

type Address struct {
	OrderNumber   string         `db:"order_number"`
	Kind          string         `db:"kind"`
	FullName      string         `db:"full_name"`
	Phone         string         `db:"phone"`
	Email         sql.NullString `db:"email"`
	StreetAddress string         `db:"street_address"`
	Wilayat       string         `db:"wilayat"`
	Governorate   string         `db:"governorate"`
	PostalCode    sql.NullString `db:"postal_code"`
	CountryCode   string         `db:"country_code"`
}

type Payment struct {
	OrderNumber    string          `db:"order_number"`
	Provider       string          `db:"provider"`
	GatewayOrderID string          `db:"gateway_order_id"`
	CaptureID      string          `db:"capture_id"`
	Status         string          `db:"status"`
	Currency       string          `db:"currency"`
	Amount         decimal.Decimal `db:"amount"`
	ExchangeRate   decimal.Decimal `db:"exchange_rate"`
	PayerID        sql.NullString  `db:"payer_id"`
	PayerEmail     sql.NullString  `db:"payer_email"`
	CapturedAt     time.Time       `db:"captured_at"`
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		FullName:      a.FullName,
		Phone:         a.Phone,
		Email:         nullStringToString(a.Email),
		StreetAddress: a.StreetAddress,
		Wilayat:       a.Wilayat,
		Governorate:   a.Governorate,
		PostalCode:    nullStringToString(a.PostalCode),
		CountryCode:   a.CountryCode,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		Provider:       p.Provider,
		GatewayOrderID: p.GatewayOrderID,
		CaptureID:      p.CaptureID,
		Status:         p.Status,
		Currency:       p.Currency,
		Amount:         p.Amount,
		ExchangeRate:   p.ExchangeRate,
		PayerID:        nullStringToString(p.PayerID),
		PayerEmail:     nullStringToString(p.PayerEmail),
		CapturedAt:     p.CapturedAt,
	}
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func OrderToEntity(o Order, addresses []Address, p Payment, items []Item) entities.Order {
	order := entities.Order{
		OrderNumber:    o.OrderNumber,
		TrackingNumber: o.TrackingNumber,
		CustomerEmail:  o.CustomerEmail,
		Locale:         entities.Locale(o.Locale),
		Status:         entities.OrderStatus(o.Status),
		Currency:       o.Currency,
		CreatedAt:      o.CreatedAt,
		Totals: entities.Totals{
			Subtotal: o.Subtotal,
			Tax:      o.Tax,
			Shipping: o.Shipping,
			Total:    o.Total,
		},
		Payment: PaymentToEntity(p),
	}

	for _, a := range addresses {
		switch entities.AddressKind(a.Kind) {
		case entities.AddressShipping:
			order.ShippingAddress = AddressToEntity(a)
		case entities.AddressBilling:
			billing := AddressToEntity(a)
			order.BillingAddress = &billing
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
