package entities

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCheckoutNotFound = errors.New("checkout not found")
	ErrInvalidOrder     = errors.New("invalid order")
)

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// ParseLocale accepts "ar", "ar-OM" or an Accept-Language value, anything else is English.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "ar") {
		return LocaleArabic
	}
	return LocaleEnglish
}

type PaymentErrorType string

const (
	PaymentErrorValidation     PaymentErrorType = "validation"
	PaymentErrorAPI            PaymentErrorType = "api"
	PaymentErrorNetwork        PaymentErrorType = "network"
	PaymentErrorCapture        PaymentErrorType = "capture"
	PaymentErrorAuthentication PaymentErrorType = "authentication"
)

var userMessages = map[PaymentErrorType]map[Locale]string{
	PaymentErrorValidation: {
		LocaleEnglish: "Please check the highlighted fields and try again.",
		LocaleArabic:  "يرجى التحقق من الحقول المحددة والمحاولة مرة أخرى.",
	},
	PaymentErrorAPI: {
		LocaleEnglish: "The payment service returned an error. Please try again.",
		LocaleArabic:  "حدث خطأ في خدمة الدفع. يرجى المحاولة مرة أخرى.",
	},
	PaymentErrorNetwork: {
		LocaleEnglish: "Could not reach the payment service. Please check your connection and try again.",
		LocaleArabic:  "تعذر الاتصال بخدمة الدفع. يرجى التحقق من الاتصال والمحاولة مرة أخرى.",
	},
	PaymentErrorCapture: {
		LocaleEnglish: "Your payment could not be completed. Please try again or use another payment method.",
		LocaleArabic:  "تعذر إتمام عملية الدفع. يرجى المحاولة مرة أخرى أو استخدام وسيلة دفع أخرى.",
	},
	PaymentErrorAuthentication: {
		LocaleEnglish: "Payments are temporarily unavailable. Please try again later.",
		LocaleArabic:  "الدفع غير متاح مؤقتاً. يرجى المحاولة لاحقاً.",
	},
}

// PaymentError is returned by the checkout flow. Type tells validation
// failures apart from gateway failures.
type PaymentError struct {
	Type       PaymentErrorType
	Message    string
	StatusCode int
	DebugID    string
	Fields     map[string]string
	Err        error
}

func NewValidationError(fields map[string]string) *PaymentError {
	return &PaymentError{
		Type:       PaymentErrorValidation,
		Message:    "invalid payment order",
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

func (e *PaymentError) Error() string {
	msg := fmt.Sprintf("%s error: %s", e.Type, e.Message)
	if e.StatusCode != 0 && e.Type != PaymentErrorValidation {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// UserMessage is the message shown to the customer.
func (e *PaymentError) UserMessage(locale Locale) string {
	msgs, ok := userMessages[e.Type]
	if !ok {
		msgs = userMessages[PaymentErrorAPI]
	}
	if msg, ok := msgs[locale]; ok {
		return msg
	}
	return msgs[LocaleEnglish]
}

// Retryable reports whether repeating the same gateway call may succeed.
func (e *PaymentError) Retryable() bool {
	switch e.Type {
	case PaymentErrorNetwork:
		return true
	case PaymentErrorAPI:
		return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

func IsPaymentError(err error, t PaymentErrorType) bool {
	var pe *PaymentError
	return errors.As(err, &pe) && pe.Type == t
}
