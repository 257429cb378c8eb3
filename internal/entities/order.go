package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "paid"
)

type Item struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Totals are kept in local currency (OMR).
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

type AddressKind string

const (
	AddressShipping AddressKind = "shipping"
	AddressBilling  AddressKind = "billing"
)

type Address struct {
	FullName      string
	Phone         string
	Email         string
	StreetAddress string
	Wilayat       string
	Governorate   string
	PostalCode    string
	CountryCode   string
}

// Order is a paid order handed over to the order store after capture.
type Order struct {
	OrderNumber    string
	TrackingNumber string
	CustomerEmail  string
	Locale         Locale
	Status         OrderStatus
	Currency       string
	CreatedAt      time.Time

	Items           []Item
	Totals          Totals
	ShippingAddress Address
	// пустой, если совпадает с адресом доставки
	BillingAddress *Address
	Payment        Payment
}

func (o *Order) Marshal() ([]byte, error) {
	return gobEncode(o)
}

func (o *Order) Unmarshal(data []byte) error {
	return gobDecode(data, o)
}

func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(v)
}

func init() {
	gob.Register(Order{})
	gob.Register(Item{})
	gob.Register(Address{})
	gob.Register(Payment{})
	gob.Register(PendingCheckout{})
}
