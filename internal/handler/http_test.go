package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const createBody = `{
	"items": [{"product_id": "lipstick-01", "name": "Velvet Lipstick", "quantity": 2, "unit_price": 45}],
	"totals": {"subtotal": "90.000", "tax": 4.5, "shipping": "5.000", "total": "99.500"},
	"customer_email": "ahmed@example.com",
	"shipping_address": {
		"full_name": "Ahmed Al-Balushi", "phone": "+968 9123 4567",
		"street_address": "Way 3021, House 12", "wilayat": "Bawshar", "governorate": "Muscat",
		"country": {"id": 1, "code": "om", "name": "Oman"}
	}
}`

type testServer struct {
	router   chi.Router
	payments *mocks.MockPaymentService
	orders   *mocks.MockOrderGetter
}

func newTestServer(t *testing.T) testServer {
	payments := mocks.NewMockPaymentService(t)
	orders := mocks.NewMockOrderGetter(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, payments, orders)

	r := chi.NewRouter()
	h.Init(r)
	return testServer{router: r, payments: payments, orders: orders}
}

func (s testServer) do(t *testing.T, req *http.Request) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func paidOrder() entities.Order {
	return entities.Order{
		OrderNumber:    "ORD-20261017-1A2B3C4D",
		TrackingNumber: "OM0123456789AB",
		Locale:         entities.LocaleEnglish,
		Status:         entities.OrderStatusPaid,
		Currency:       "OMR",
		Totals:         entities.Totals{Total: decimal.RequireFromString("99.5")},
		Payment: entities.Payment{
			CaptureID: "CAP-1",
			Amount:    decimal.RequireFromString("258.7"),
		},
	}
}

func TestHTTPHandler_CreatePaymentOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		language     string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     []string
	}{
		{
			name: "created",
			body: createBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePaymentOrder(mock.Anything, mock.Anything, entities.LocaleEnglish).
					Run(func(_ context.Context, req checkout.PaymentOrderRequest, _ entities.Locale) {
						assert.Equal(t, "4.5", req.Totals.Tax.String())
						assert.Equal(t, "OM", req.ShippingAddress.Country.CountryCode())
					}).
					Return(entities.PaymentOrder{
						GatewayOrderID: "GW-1",
						OrderNumber:    "ORD-20261017-1A2B3C4D",
						Status:         "CREATED",
						ApproveURL:     "https://www.paypal.com/checkoutnow?token=GW-1",
						Amount:         decimal.RequireFromString("258.7"),
						Currency:       "USD",
						LocalTotal:     decimal.RequireFromString("99.5"),
						LocalCurrency:  "OMR",
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"amount":"258.70"`, `"local_total":"99.500"`, `"approve_url":"https://www.paypal.com/checkoutnow?token=GW-1"`},
		},
		{
			name:     "validation error in arabic",
			body:     createBody,
			language: "ar-OM,ar;q=0.9",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePaymentOrder(mock.Anything, mock.Anything, entities.LocaleArabic).
					Return(entities.PaymentOrder{}, entities.NewValidationError(map[string]string{
						"totals": "total mismatch: calculated 99.500, provided 200.000",
					})).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"type":"validation"`, `"totals":"total mismatch: calculated 99.500, provided 200.000"`, "يرجى"},
		},
		{
			name: "gateway unreachable",
			body: createBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePaymentOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.PaymentOrder{}, &entities.PaymentError{Type: entities.PaymentErrorNetwork}).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"type":"network"`},
		},
		{
			name: "gateway credentials rejected",
			body: createBody,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePaymentOrder(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.PaymentOrder{}, &entities.PaymentError{Type: entities.PaymentErrorAuthentication, DebugID: "dbg-1"}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{`"type":"authentication"`, `"debug_id":"dbg-1"`},
		},
		{
			name:         "malformed body",
			body:         `{"items": [`,
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"invalid request body"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.payments)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout/orders", strings.NewReader(tc.body))
			if tc.language != "" {
				req.Header.Set("Accept-Language", tc.language)
			}

			status, body := s.do(t, req)

			assert.Equal(t, tc.wantStatus, status)
			for _, want := range tc.wantBody {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestHTTPHandler_CreatePaymentOrder_BodyLocaleWins(t *testing.T) {
	s := newTestServer(t)
	s.payments.EXPECT().
		CreatePaymentOrder(mock.Anything, mock.Anything, entities.LocaleArabic).
		Return(entities.PaymentOrder{GatewayOrderID: "GW-1"}, nil).Once()

	body := strings.Replace(createBody, `"customer_email"`, `"locale": "ar", "customer_email"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/orders", strings.NewReader(body))
	req.Header.Set("Accept-Language", "en-US")

	status, _ := s.do(t, req)
	assert.Equal(t, http.StatusCreated, status)
}

func TestHTTPHandler_CapturePaymentOrder(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "captured",
			id:   "GW1",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CapturePaymentOrder(mock.Anything, "GW1", entities.Locale("")).
					Return(paidOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-20261017-1A2B3C4D"`,
		},
		{
			name: "checkout expired",
			id:   "GW1",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CapturePaymentOrder(mock.Anything, "GW1", mock.Anything).
					Return(entities.Order{}, entities.ErrCheckoutNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"checkout not found"`,
		},
		{
			name: "declined",
			id:   "GW1",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CapturePaymentOrder(mock.Anything, "GW1", mock.Anything).
					Return(entities.Order{}, &entities.PaymentError{Type: entities.PaymentErrorCapture, StatusCode: http.StatusUnprocessableEntity}).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"type":"capture"`,
		},
		{
			name: "unexpected error",
			id:   "GW1",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CapturePaymentOrder(mock.Anything, "GW1", mock.Anything).
					Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "invalid id",
			id:           "GW-1;drop",
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.payments)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout/orders/"+tc.id+"/capture", nil)
			status, body := s.do(t, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetPaymentOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s := newTestServer(t)
		s.payments.EXPECT().GetPaymentOrder(mock.Anything, "GW1").
			Return(entities.PaymentOrder{GatewayOrderID: "GW1", Status: "APPROVED", Amount: decimal.RequireFromString("258.7"), Currency: "USD"}, nil).Once()

		status, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/checkout/orders/GW1", nil))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"status":"APPROVED"`)
		assert.NotContains(t, body, "local_total")
	})

	t.Run("unknown at gateway", func(t *testing.T) {
		s := newTestServer(t)
		s.payments.EXPECT().GetPaymentOrder(mock.Anything, "GW1").
			Return(entities.PaymentOrder{}, &entities.PaymentError{Type: entities.PaymentErrorAPI, StatusCode: http.StatusNotFound}).Once()

		status, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/api/checkout/orders/GW1", nil))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderNumber  string
		mockBehavior func(svc *mocks.MockOrderGetter)
		wantStatus   int
		wantBody     string
	}{
		{
			name:        "success",
			orderNumber: "ORD-20261017-1A2B3C4D",
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrder(mock.Anything, "ORD-20261017-1A2B3C4D").
					Return(paidOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-20261017-1A2B3C4D"`,
		},
		{
			name:        "not found",
			orderNumber: "ORD-MISSING",
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrder(mock.Anything, "ORD-MISSING").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:        "internal error",
			orderNumber: "ORD-20261017-1A2B3C4D",
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrder(mock.Anything, "ORD-20261017-1A2B3C4D").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.orders)

			status, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.orderNumber, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OM0123456789AB", resp["tracking_number"])
				totals := resp["totals"].(map[string]any)
				assert.Equal(t, "99.500", totals["total"])
			}
		})
	}
}
