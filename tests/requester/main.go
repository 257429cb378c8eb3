package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL     = "http://localhost:8080/api"
	orderNumber = "ORD-20261017-1A2B3C4D"
)

// валидная корзина: 2 * 4.500 + 5% НДС + 2.000 доставка
const validCart = `{
	"items": [{"product_id": "lipstick-01", "name": "Velvet Lipstick", "quantity": 2, "unit_price": "4.500"}],
	"totals": {"subtotal": "9.000", "tax": "0.450", "shipping": "2.000", "total": "11.450"},
	"customer_email": "customer@example.com",
	"shipping_address": {
		"full_name": "Test Customer", "phone": "+968 9123 4567",
		"street_address": "Way 3021, House 12", "wilayat": "Bawshar", "governorate": "Muscat",
		"country": 1
	}
}`

const invalidCart = `{
	"items": [{"product_id": "lipstick-01", "name": "Velvet Lipstick", "quantity": 2, "unit_price": "4.500"}],
	"totals": {"subtotal": "9.000", "tax": "0.450", "shipping": "2.000", "total": "20.000"},
	"customer_email": "not-an-email",
	"shipping_address": {"full_name": "", "phone": "123", "street_address": "", "wilayat": "", "governorate": ""}
}`

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	switch rand.Intn(4) {
	case 0:
		post(validCart, "en")
	case 1:
		post(invalidCart, "ar")
	default:
		get(baseURL + "/orders/" + orderNumber)
	}
}

func post(body, lang string) {
	url := baseURL + "/checkout/orders"
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", lang)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST", url, lang, "->", resp.Status)
	resp.Body.Close()
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
