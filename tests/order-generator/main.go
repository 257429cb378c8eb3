package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/publisher"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	products = []struct {
		id, name string
		price    string
	}{
		{"lipstick-01", "Velvet Lipstick", "4.500"},
		{"serum-07", "Rose Serum", "12.750"},
		{"oud-mist-03", "Oud Body Mist", "8.200"},
		{"kohl-02", "Black Kohl", "2.350"},
		{"cream-11", "Frankincense Cream", "15.000"},
	}
	wilayats = []struct{ wilayat, governorate string }{
		{"Bawshar", "Muscat"},
		{"Seeb", "Muscat"},
		{"Sohar", "North Al Batinah"},
		{"Nizwa", "Ad Dakhiliyah"},
		{"Salalah", "Dhofar"},
	}
	vat      = decimal.RequireFromString("0.05")
	shipping = decimal.RequireFromString("2.000")
	rate     = decimal.RequireFromString("2.6")
)

func generateRandomOrder() entities.Order {
	var items []entities.Item
	subtotal := decimal.Zero
	for range rand.Intn(3) + 1 {
		p := products[rand.Intn(len(products))]
		item := entities.Item{
			ProductID: p.id,
			Name:      p.name,
			Quantity:  rand.Intn(3) + 1,
			UnitPrice: decimal.RequireFromString(p.price),
		}
		subtotal = subtotal.Add(item.LineTotal())
		items = append(items, item)
	}
	tax := subtotal.Mul(vat).Round(3)
	total := subtotal.Add(tax).Add(shipping)

	w := wilayats[rand.Intn(len(wilayats))]
	now := time.Now().UTC()
	gatewayID := uuid.NewString()[:17]

	locale := entities.LocaleEnglish
	if rand.Intn(2) == 0 {
		locale = entities.LocaleArabic
	}

	return entities.Order{
		OrderNumber:    fmt.Sprintf("ORD-%s-%08X", now.Format("20060102"), rand.Uint32()),
		TrackingNumber: fmt.Sprintf("OM%012X", rand.Int63n(1<<48)),
		CustomerEmail:  fmt.Sprintf("customer%d@example.com", rand.Intn(1000)),
		Locale:         locale,
		Status:         entities.OrderStatusPaid,
		Currency:       "OMR",
		CreatedAt:      now,
		Items:          items,
		Totals: entities.Totals{
			Subtotal: subtotal,
			Tax:      tax,
			Shipping: shipping,
			Total:    total,
		},
		ShippingAddress: entities.Address{
			FullName:      "Test Customer",
			Phone:         fmt.Sprintf("9%07d", rand.Intn(10000000)),
			StreetAddress: fmt.Sprintf("Way %d, House %d", rand.Intn(5000), rand.Intn(100)),
			Wilayat:       w.wilayat,
			Governorate:   w.governorate,
			CountryCode:   "OM",
		},
		Payment: entities.Payment{
			Provider:       entities.ProviderPayPal,
			GatewayOrderID: gatewayID,
			CaptureID:      uuid.NewString()[:17],
			Status:         "COMPLETED",
			Currency:       "USD",
			Amount:         total.Mul(rate).Round(2),
			ExchangeRate:   rate,
			CapturedAt:     now,
		},
	}
}

// Публикует случайные оплаченные заказы в топик, который читает сервис
func main() {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP("localhost:9092"),
		Topic:                  "paid-orders",
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			m, err := publisher.EncodeOrder(order)
			if err != nil {
				log.Println("failed to encode order:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, m); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated", order.OrderNumber, order.Totals.Total.StringFixed(3))
		case <-ctx.Done():
			return
		}
	}
}
