package repo

import (
	"database/sql"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	created := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

	order := Order{
		OrderNumber:    "ORD-20261017-1A2B3C4D",
		TrackingNumber: "OM0123456789AB",
		CustomerEmail:  "ahmed@example.com",
		Locale:         "ar",
		Status:         "paid",
		Currency:       "OMR",
		Subtotal:       decimal.RequireFromString("90.000"),
		Tax:            decimal.RequireFromString("4.500"),
		Shipping:       decimal.RequireFromString("5.000"),
		Total:          decimal.RequireFromString("99.500"),
		CreatedAt:      created,
	}
	addresses := []Address{
		{Kind: "shipping", FullName: "Ahmed Al-Balushi", Phone: "91234567", Wilayat: "Bawshar", CountryCode: "OM"},
		{Kind: "billing", FullName: "Fatma Al-Harthy", Phone: "24123456", PostalCode: sql.NullString{String: "112", Valid: true}, CountryCode: "OM"},
	}
	payment := Payment{
		Provider:  "paypal",
		CaptureID: "CAP-1",
		Amount:    decimal.RequireFromString("258.70"),
		PayerID:   sql.NullString{String: "PAYER1", Valid: true},
	}
	items := []Item{
		{Position: 0, ProductID: "lipstick-01", Name: "Velvet Lipstick", Quantity: 2, UnitPrice: decimal.RequireFromString("45.000")},
	}

	got := OrderToEntity(order, addresses, payment, items)

	assert.Equal(t, entities.LocaleArabic, got.Locale)
	assert.Equal(t, entities.OrderStatusPaid, got.Status)
	assert.Equal(t, "99.5", got.Totals.Total.String())
	assert.Equal(t, "Ahmed Al-Balushi", got.ShippingAddress.FullName)
	assert.Empty(t, got.ShippingAddress.PostalCode)
	require.NotNil(t, got.BillingAddress)
	assert.Equal(t, "112", got.BillingAddress.PostalCode)
	assert.Equal(t, "PAYER1", got.Payment.PayerID)
	assert.Empty(t, got.Payment.PayerEmail)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestOrderToEntity_NoBilling(t *testing.T) {
	got := OrderToEntity(Order{OrderNumber: "ORD-1"}, []Address{{Kind: "shipping", FullName: "Ahmed"}}, Payment{}, nil)

	assert.Nil(t, got.BillingAddress)
	assert.Nil(t, got.Items)
}
