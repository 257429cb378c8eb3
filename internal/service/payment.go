package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/paypal"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayPal rejects longer item names.
const maxItemNameLength = 127

type Gateway interface {
	CreateOrder(ctx context.Context, req paypal.CreateOrderRequest, requestID string) (paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID, requestID string) (paypal.Order, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, order entities.Order) error
}

type OrderStore interface {
	SaveOrder(ctx context.Context, order entities.Order) error
	CacheOrder(order entities.Order)
}

type PaymentConfig struct {
	Currency      string
	LocalCurrency string
	BrandName     string
	ReturnURL     string
	CancelURL     string
	Retry         utils.RetryConfig
}

type paymentService struct {
	logger    *slog.Logger
	validator *checkout.Validator
	converter checkout.Converter
	gateway   Gateway
	checkouts Cache
	orders    OrderStore
	publisher OrderPublisher
	cfg       PaymentConfig
	now       func() time.Time
}

func NewPaymentService(
	logger *slog.Logger,
	validator *checkout.Validator,
	converter checkout.Converter,
	gateway Gateway,
	checkouts Cache,
	orders OrderStore,
	publisher OrderPublisher,
	cfg PaymentConfig,
) *paymentService {
	// только повторяемые ошибки шлюза
	cfg.Retry.ShouldRetry = func(err error) bool {
		var pe *entities.PaymentError
		return errors.As(err, &pe) && pe.Retryable()
	}
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		validator: validator,
		converter: converter,
		gateway:   gateway,
		checkouts: checkouts,
		orders:    orders,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreatePaymentOrder validates the cart and opens a gateway order for it.
// Invalid carts never reach the gateway.
func (s *paymentService) CreatePaymentOrder(ctx context.Context, req checkout.PaymentOrderRequest, locale entities.Locale) (entities.PaymentOrder, error) {
	result := s.validator.ValidatePaymentOrder(req)
	if !result.Valid {
		s.logger.InfoContext(ctx, "payment order rejected", slog.Int("errors", len(result.Errors)))
		return entities.PaymentOrder{}, entities.NewValidationError(result.Errors)
	}

	pending, err := s.newPendingCheckout(req, locale)
	if err != nil {
		return entities.PaymentOrder{}, err
	}

	gatewayReq := s.gatewayRequest(ctx, &pending)

	var order paypal.Order
	requestID := uuid.NewString()
	fn := func() error {
		var err error
		order, err = s.gateway.CreateOrder(ctx, gatewayReq, requestID)
		return err
	}
	if err := utils.Retry(ctx, s.cfg.Retry, fn); err != nil {
		s.logger.ErrorContext(ctx, "failed to create gateway order",
			slog.String("order_number", pending.OrderNumber), slog.Any("error", err))
		return entities.PaymentOrder{}, err
	}

	pending.GatewayOrderID = order.ID
	data, err := pending.Marshal()
	if err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("failed to marshal checkout: %w", err)
	}
	s.checkouts.Set(order.ID, data)

	s.logger.InfoContext(ctx, "payment order created",
		slog.String("order_number", pending.OrderNumber),
		slog.String("gateway_order_id", order.ID),
		slog.String("amount", pending.SettlementAmount.StringFixed(2)),
	)

	return entities.PaymentOrder{
		GatewayOrderID: order.ID,
		OrderNumber:    pending.OrderNumber,
		Status:         order.Status,
		ApproveURL:     order.ApproveURL(),
		Amount:         pending.SettlementAmount,
		Currency:       pending.Currency,
		LocalTotal:     pending.Totals.Total,
		LocalCurrency:  s.cfg.LocalCurrency,
	}, nil
}

func (s *paymentService) GetPaymentOrder(ctx context.Context, gatewayOrderID string) (entities.PaymentOrder, error) {
	var order paypal.Order
	fn := func() error {
		var err error
		order, err = s.gateway.GetOrder(ctx, gatewayOrderID)
		return err
	}
	if err := utils.Retry(ctx, s.cfg.Retry, fn); err != nil {
		return entities.PaymentOrder{}, err
	}

	res := entities.PaymentOrder{
		GatewayOrderID: order.ID,
		Status:         order.Status,
		ApproveURL:     order.ApproveURL(),
		LocalCurrency:  s.cfg.LocalCurrency,
	}
	if len(order.PurchaseUnits) > 0 {
		amount := order.PurchaseUnits[0].Amount
		res.Currency = amount.CurrencyCode
		value, err := decimal.NewFromString(amount.Value)
		if err != nil {
			s.logger.WarnContext(ctx, "malformed gateway amount",
				slog.String("gateway_order_id", gatewayOrderID),
				slog.String("value", amount.Value),
				slog.Any("error", err),
			)
		}
		res.Amount = value
		res.OrderNumber = order.PurchaseUnits[0].InvoiceID
	}
	if pending, err := s.pendingCheckout(gatewayOrderID); err == nil {
		res.OrderNumber = pending.OrderNumber
		res.LocalTotal = pending.Totals.Total
	}
	return res, nil
}

// CapturePaymentOrder charges an approved gateway order and finalizes the store order.
// The capture request id is derived from the gateway order id, so repeating
// a capture never charges twice.
func (s *paymentService) CapturePaymentOrder(ctx context.Context, gatewayOrderID string, locale entities.Locale) (entities.Order, error) {
	pending, err := s.pendingCheckout(gatewayOrderID)
	if err != nil {
		return entities.Order{}, err
	}

	var captured paypal.Order
	requestID := "capture-" + gatewayOrderID
	fn := func() error {
		var err error
		captured, err = s.gateway.CaptureOrder(ctx, gatewayOrderID, requestID)
		return err
	}
	if err := utils.Retry(ctx, s.cfg.Retry, fn); err != nil {
		s.logger.ErrorContext(ctx, "failed to capture gateway order",
			slog.String("gateway_order_id", gatewayOrderID), slog.Any("error", err))
		return entities.Order{}, err
	}

	capture, ok := captured.Capture()
	if captured.Status != paypal.StatusCompleted || !ok || capture.Status != paypal.StatusCompleted {
		s.logger.WarnContext(ctx, "capture not completed",
			slog.String("gateway_order_id", gatewayOrderID),
			slog.String("status", captured.Status),
			slog.String("capture_status", capture.Status),
		)
		return entities.Order{}, &entities.PaymentError{
			Type:    entities.PaymentErrorCapture,
			Message: fmt.Sprintf("capture not completed: order %s, capture %q", captured.Status, capture.Status),
		}
	}

	if locale == "" {
		locale = pending.Locale
	}
	if locale == "" {
		locale = entities.LocaleEnglish
	}
	order := s.finalizeOrder(ctx, pending, captured, capture, locale)

	s.persist(ctx, order)
	s.orders.CacheOrder(order)
	s.checkouts.Delete(gatewayOrderID)

	s.logger.InfoContext(ctx, "payment captured",
		slog.String("order_number", order.OrderNumber),
		slog.String("gateway_order_id", gatewayOrderID),
		slog.String("capture_id", capture.ID),
	)
	return order, nil
}

// persist hands the order to the consumer. When the broker is unavailable
// the order is saved right away.
func (s *paymentService) persist(ctx context.Context, order entities.Order) {
	err := s.publisher.PublishOrder(ctx, order)
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "failed to publish order, saving directly",
		slog.String("order_number", order.OrderNumber), slog.Any("error", err))

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		// деньги уже списаны, заказ остаётся в кэше
		s.logger.ErrorContext(ctx, "failed to persist captured order",
			slog.String("order_number", order.OrderNumber),
			slog.String("capture_id", order.Payment.CaptureID),
			slog.Any("error", err),
		)
	}
}

func (s *paymentService) pendingCheckout(gatewayOrderID string) (entities.PendingCheckout, error) {
	data, ok := s.checkouts.Get(gatewayOrderID)
	if !ok {
		return entities.PendingCheckout{}, entities.ErrCheckoutNotFound
	}
	var pending entities.PendingCheckout
	if err := pending.Unmarshal(data); err != nil {
		return entities.PendingCheckout{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
	}
	return pending, nil
}

func (s *paymentService) newPendingCheckout(req checkout.PaymentOrderRequest, locale entities.Locale) (entities.PendingCheckout, error) {
	items := make([]entities.Item, 0, len(req.Items))
	for _, it := range req.Items {
		price, err := it.UnitPrice.Decimal()
		if err != nil {
			return entities.PendingCheckout{}, fmt.Errorf("failed to parse unit price: %w", err)
		}
		items = append(items, entities.Item{
			ProductID: strings.TrimSpace(it.ProductID),
			Name:      strings.TrimSpace(it.Name),
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}

	var totals entities.Totals
	for _, part := range []struct {
		in  checkout.Amount
		out *decimal.Decimal
	}{
		{req.Totals.Subtotal, &totals.Subtotal},
		{req.Totals.Tax, &totals.Tax},
		{req.Totals.Shipping, &totals.Shipping},
		{req.Totals.Total, &totals.Total},
	} {
		d, err := part.in.Decimal()
		if err != nil {
			return entities.PendingCheckout{}, fmt.Errorf("failed to parse totals: %w", err)
		}
		*part.out = d
	}

	pending := entities.PendingCheckout{
		OrderNumber:     newOrderNumber(s.now()),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		Locale:          locale,
		Items:           items,
		Totals:          totals,
		ShippingAddress: toAddress(req.ShippingAddress),
		Currency:        s.cfg.Currency,
		ExchangeRate:    s.converter.Rate(),
		CreatedAt:       s.now(),
	}
	if req.BillingAddress != nil {
		billing := toAddress(*req.BillingAddress)
		pending.BillingAddress = &billing
	}
	return pending, nil
}

// gatewayRequest converts the cart to the settlement currency. Every component is
// converted on its own so the gateway breakdown adds up, pending.SettlementAmount
// is set to the sum.
func (s *paymentService) gatewayRequest(ctx context.Context, pending *entities.PendingCheckout) paypal.CreateOrderRequest {
	money := func(d decimal.Decimal) paypal.Money {
		return paypal.Money{CurrencyCode: pending.Currency, Value: d.StringFixed(2)}
	}

	itemTotal := decimal.Zero
	items := make([]paypal.Item, 0, len(pending.Items))
	for _, it := range pending.Items {
		unit := s.converter.ConvertDecimal(it.UnitPrice)
		itemTotal = itemTotal.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, paypal.Item{
			Name:       truncate(it.Name, maxItemNameLength),
			SKU:        it.ProductID,
			Quantity:   strconv.Itoa(it.Quantity),
			UnitAmount: money(unit),
			Category:   "PHYSICAL_GOODS",
		})
	}
	tax := s.converter.ConvertDecimal(pending.Totals.Tax)
	shipping := s.converter.ConvertDecimal(pending.Totals.Shipping)
	amount := itemTotal.Add(tax).Add(shipping)
	pending.SettlementAmount = amount

	if direct := s.converter.ConvertDecimal(pending.Totals.Total); !direct.Equal(amount) {
		s.logger.InfoContext(ctx, "settlement amount differs from converted total",
			slog.String("order_number", pending.OrderNumber),
			slog.String("amount", amount.StringFixed(2)),
			slog.String("converted_total", direct.StringFixed(2)),
		)
	}

	addr := pending.ShippingAddress
	return paypal.CreateOrderRequest{
		Intent: paypal.IntentCapture,
		PurchaseUnits: []paypal.PurchaseUnit{{
			ReferenceID: "default",
			InvoiceID:   pending.OrderNumber,
			CustomID:    pending.OrderNumber,
			Amount: paypal.Amount{
				CurrencyCode: pending.Currency,
				Value:        amount.StringFixed(2),
				Breakdown: &paypal.Breakdown{
					ItemTotal: money(itemTotal),
					TaxTotal:  ptr(money(tax)),
					Shipping:  ptr(money(shipping)),
				},
			},
			Items: items,
			Shipping: &paypal.Shipping{
				Name: &paypal.Name{FullName: addr.FullName},
				Address: &paypal.Address{
					AddressLine1: addr.StreetAddress,
					AdminArea2:   addr.Wilayat,
					AdminArea1:   addr.Governorate,
					PostalCode:   addr.PostalCode,
					CountryCode:  addr.CountryCode,
				},
			},
		}},
		Payer: &paypal.Payer{EmailAddress: pending.CustomerEmail},
		ApplicationContext: &paypal.ApplicationContext{
			BrandName:          s.cfg.BrandName,
			Locale:             string(pending.Locale),
			ShippingPreference: "SET_PROVIDED_ADDRESS",
			UserAction:         "PAY_NOW",
			ReturnURL:          s.cfg.ReturnURL,
			CancelURL:          s.cfg.CancelURL,
		},
	}
}

func (s *paymentService) finalizeOrder(ctx context.Context, pending entities.PendingCheckout, captured paypal.Order, capture paypal.Capture, locale entities.Locale) entities.Order {
	amount, err := decimal.NewFromString(capture.Amount.Value)
	if err != nil {
		amount = pending.SettlementAmount
	}
	if !amount.Equal(pending.SettlementAmount) {
		s.logger.WarnContext(ctx, "captured amount differs from checkout",
			slog.String("order_number", pending.OrderNumber),
			slog.String("captured", capture.Amount.Value),
			slog.String("expected", pending.SettlementAmount.StringFixed(2)),
		)
	}

	capturedAt, err := time.Parse(time.RFC3339, capture.CreateTime)
	if err != nil {
		capturedAt = s.now()
	}

	currency := capture.Amount.CurrencyCode
	if currency == "" {
		currency = pending.Currency
	}

	payment := entities.Payment{
		Provider:       entities.ProviderPayPal,
		GatewayOrderID: captured.ID,
		CaptureID:      capture.ID,
		Status:         capture.Status,
		Currency:       currency,
		Amount:         amount,
		ExchangeRate:   pending.ExchangeRate,
		CapturedAt:     capturedAt.UTC(),
	}
	if captured.Payer != nil {
		payment.PayerID = captured.Payer.PayerID
		payment.PayerEmail = captured.Payer.EmailAddress
	}

	return entities.Order{
		OrderNumber:     pending.OrderNumber,
		TrackingNumber:  trackingNumber(capture.ID),
		CustomerEmail:   pending.CustomerEmail,
		Locale:          locale,
		Status:          entities.OrderStatusPaid,
		Currency:        s.cfg.LocalCurrency,
		CreatedAt:       s.now().UTC(),
		Items:           pending.Items,
		Totals:          pending.Totals,
		ShippingAddress: pending.ShippingAddress,
		BillingAddress:  pending.BillingAddress,
		Payment:         payment,
	}
}

func toAddress(in checkout.AddressInput) entities.Address {
	phone := strings.TrimSpace(in.Phone)
	if res := checkout.ValidatePhone(phone); res.Valid {
		phone = res.Formatted
	}
	return entities.Address{
		FullName:      strings.TrimSpace(in.FullName),
		Phone:         phone,
		Email:         strings.TrimSpace(in.Email),
		StreetAddress: strings.TrimSpace(in.StreetAddress),
		Wilayat:       strings.TrimSpace(in.Wilayat),
		Governorate:   strings.TrimSpace(in.Governorate),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		CountryCode:   in.Country.CountryCode(),
	}
}

// ORD-20261017-1A2B3C4D
func newOrderNumber(now time.Time) string {
	return "ORD-" + now.UTC().Format("20060102") + "-" + shortID(8)
}

// trackingNumber is stable per capture: a repeated capture of the same gateway
// order yields the same capture id and therefore the same tracking number.
func trackingNumber(captureID string) string {
	id := strings.ReplaceAll(uuid.NewSHA1(uuid.NameSpaceOID, []byte(captureID)).String(), "-", "")
	return "OM" + strings.ToUpper(id[:12])
}

func shortID(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:n])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func ptr[T any](v T) *T {
	return &v
}
