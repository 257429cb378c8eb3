package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodySize = 1 << 20

type PaymentService interface {
	CreatePaymentOrder(ctx context.Context, req checkout.PaymentOrderRequest, locale entities.Locale) (entities.PaymentOrder, error)
	GetPaymentOrder(ctx context.Context, gatewayOrderID string) (entities.PaymentOrder, error)
	CapturePaymentOrder(ctx context.Context, gatewayOrderID string, locale entities.Locale) (entities.Order, error)
}

type OrderGetter interface {
	GetOrder(ctx context.Context, orderNumber string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentService
	orders   OrderGetter
}

func NewHTTPHandler(logger *slog.Logger, payments PaymentService, orders OrderGetter) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		payments: payments,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout/orders", h.CreatePaymentOrder)
		r.Get("/checkout/orders/{id}", h.GetPaymentOrder)
		r.Post("/checkout/orders/{id}/capture", h.CapturePaymentOrder)
		r.Get("/orders/{order_number}", h.GetOrder)
	})
}

// CreatePaymentOrder validates the cart and opens a PayPal order.
// @Summary      Create payment order
// @Description  Validates items, totals and addresses, converts the amounts from OMR to USD and creates a PayPal order. The buyer has to be redirected to approve_url.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string                        false  "en or ar, used when locale is not set in the body"
// @Param        request          body      checkout.PaymentOrderRequest  true   "Cart"
// @Success      201  {object}  PaymentOrderResponse
// @Failure      400  {object}  PaymentErrorResponse "Validation failed, fields holds the errors"
// @Failure      502  {object}  PaymentErrorResponse "Gateway error"
// @Failure      503  {object}  PaymentErrorResponse "Gateway unreachable"
// @Router       /api/checkout/orders [post]
func (h *HTTPHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer observe("create", time.Now())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req checkout.PaymentOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		paymentRequestsTotal.WithLabelValues("create", "bad_request").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	locale := requestLocale(r, req.Locale)

	order, err := h.payments.CreatePaymentOrder(ctx, req, locale)
	if err != nil {
		h.writePaymentError(ctx, w, "create", err, locale)
		return
	}

	paymentRequestsTotal.WithLabelValues("create", "ok").Inc()
	utils.WriteJSON(w, PaymentOrderEntityToJSON(order), http.StatusCreated)
}

// GetPaymentOrder returns the gateway status of a payment order.
// @Summary      Get payment order
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "PayPal order id"
// @Success      200  {object}  PaymentOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid path parameter"
// @Failure      404  {object}  PaymentErrorResponse "Payment order not found"
// @Failure      502  {object}  PaymentErrorResponse "Gateway error"
// @Router       /api/checkout/orders/{id} [get]
func (h *HTTPHandler) GetPaymentOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer observe("get", time.Now())
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,alphanum,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.payments.GetPaymentOrder(ctx, id)
	if err != nil {
		h.writePaymentError(ctx, w, "get", err, requestLocale(r, ""))
		return
	}

	paymentRequestsTotal.WithLabelValues("get", "ok").Inc()
	utils.WriteJSON(w, PaymentOrderEntityToJSON(order), http.StatusOK)
}

// CapturePaymentOrder captures an approved PayPal order and finalizes the store order.
// @Summary      Capture payment order
// @Description  Safe to repeat, the buyer is charged once.
// @Tags         checkout
// @Produce      json
// @Param        id               path      string  true   "PayPal order id"
// @Param        locale           query     string  false  "en or ar"
// @Param        Accept-Language  header    string  false  "en or ar"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid path parameter"
// @Failure      404  {object}  PaymentErrorResponse "Checkout not found or expired"
// @Failure      422  {object}  PaymentErrorResponse "Payment declined"
// @Failure      502  {object}  PaymentErrorResponse "Gateway error"
// @Router       /api/checkout/orders/{id}/capture [post]
func (h *HTTPHandler) CapturePaymentOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer observe("capture", time.Now())
	id := chi.URLParam(r, "id")

	if err := h.validate.Var(id, "required,alphanum,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	locale := requestLocale(r, "")
	order, err := h.payments.CapturePaymentOrder(ctx, id, locale)
	if err != nil {
		h.writePaymentError(ctx, w, "capture", err, locale)
		return
	}

	paymentRequestsTotal.WithLabelValues("capture", "ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrder returns a paid order by its number.
// @Summary      Get order by number
// @Description  Returns a paid order by its order number
// @Tags         orders
// @Produce      json
// @Param        order_number   path      string  true  "Order number"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid path parameter"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/orders/{order_number} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	if err := h.validate.Var(orderNumber, "required,max=32"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrder(ctx, orderNumber)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_number", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) writePaymentError(ctx context.Context, w http.ResponseWriter, operation string, err error, locale entities.Locale) {
	var pe *entities.PaymentError
	if errors.As(err, &pe) {
		status := paymentErrorStatus(pe)
		paymentRequestsTotal.WithLabelValues(operation, string(pe.Type)).Inc()
		if pe.Type != entities.PaymentErrorValidation {
			h.logger.WarnContext(ctx, "payment operation failed",
				slog.String("operation", operation),
				slog.String("type", string(pe.Type)),
				slog.Int("gateway_status", pe.StatusCode),
				slog.String("debug_id", pe.DebugID),
				slog.Any("error", err),
			)
		}
		utils.WriteJSON(w, PaymentErrorResponse{
			Type:    string(pe.Type),
			Message: pe.UserMessage(locale),
			Fields:  pe.Fields,
			DebugID: pe.DebugID,
		}, status)
		return
	}

	if errors.Is(err, entities.ErrCheckoutNotFound) {
		paymentRequestsTotal.WithLabelValues(operation, "not_found").Inc()
		utils.WriteError(w, "checkout not found", http.StatusNotFound)
		return
	}

	paymentRequestsTotal.WithLabelValues(operation, "error").Inc()
	h.logger.ErrorContext(ctx, "payment operation failed", slog.String("operation", operation), slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

func paymentErrorStatus(pe *entities.PaymentError) int {
	switch pe.Type {
	case entities.PaymentErrorValidation:
		return http.StatusBadRequest
	case entities.PaymentErrorCapture:
		return http.StatusUnprocessableEntity
	case entities.PaymentErrorNetwork:
		return http.StatusServiceUnavailable
	case entities.PaymentErrorAPI:
		if pe.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
	}
	return http.StatusBadGateway
}

// requestLocale picks the locale from the body, the locale query param or
// Accept-Language, in that order. Empty means the caller did not say.
func requestLocale(r *http.Request, explicit string) entities.Locale {
	for _, v := range []string{explicit, r.URL.Query().Get("locale"), r.Header.Get("Accept-Language")} {
		if v != "" {
			return entities.ParseLocale(v)
		}
	}
	return ""
}

func observe(operation string, start time.Time) {
	paymentRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
