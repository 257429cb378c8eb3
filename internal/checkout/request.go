package checkout

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// TotalsField is the error key used for reconciliation failures.
const TotalsField = "totals"

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// Validator validates whole "create payment order" payloads.
type Validator struct {
	limits     AmountLimits
	reconciler *Reconciler
	sink       MetricsSink
}

func NewValidator(logger *slog.Logger, limits AmountLimits, sink MetricsSink) *Validator {
	if sink == nil {
		sink = NopSink{}
	}
	return &Validator{
		limits:     limits,
		reconciler: NewReconciler(logger, sink),
		sink:       sink,
	}
}

// ValidatePaymentOrder checks every field of the request and reconciles the totals.
// Totals are reconciled only when all amounts could be parsed.
func (v *Validator) ValidatePaymentOrder(req PaymentOrderRequest) ValidationResult {
	errs := make(map[string]string)

	items, itemsOK := v.collectItemErrors(errs, req.Items)
	totals, totalsOK := v.collectTotalsErrors(errs, req.Totals)

	if itemsOK && totalsOK {
		if err := v.reconciler.Reconcile(items, totals); err != nil {
			errs[TotalsField] = err.Error()
		}
	}

	if res := ValidateEmail(req.CustomerEmail); !res.Valid {
		errs["customer_email"] = res.Error
	}

	collectAddressErrors(errs, "shipping_address.", req.ShippingAddress)
	if req.BillingAddress != nil {
		collectAddressErrors(errs, "billing_address.", *req.BillingAddress)
	}

	result := newValidationResult(errs)
	v.record(result)
	return result
}

func (v *Validator) collectItemErrors(errs map[string]string, items []OrderItem) ([]LineItem, bool) {
	if len(items) == 0 {
		errs["items"] = "at least one item is required"
		return nil, false
	}

	ok := true
	lines := make([]LineItem, 0, len(items))
	for i, it := range items {
		key := fmt.Sprintf("items[%d].", i)

		if strings.TrimSpace(it.ProductID) == "" {
			errs[key+"product_id"] = "product id is required"
			ok = false
		}
		if strings.TrimSpace(it.Name) == "" {
			errs[key+"name"] = "item name is required"
			ok = false
		}
		if it.Quantity <= 0 {
			errs[key+"quantity"] = "quantity must be a positive integer"
			ok = false
		}

		price, err := v.parseAmount(it.UnitPrice)
		if err != nil {
			errs[key+"unit_price"] = err.Error()
			ok = false
			continue
		}
		if !price.IsPositive() {
			errs[key+"unit_price"] = "unit price must be greater than zero"
			ok = false
			continue
		}
		lines = append(lines, LineItem{UnitPrice: price, Quantity: it.Quantity})
	}
	return lines, ok
}

func (v *Validator) collectTotalsErrors(errs map[string]string, t Totals) (TotalsBreakdown, bool) {
	var out TotalsBreakdown
	ok := true
	for _, part := range []struct {
		field string
		in    Amount
		out   *decimal.Decimal
	}{
		{"subtotal", t.Subtotal, &out.Subtotal},
		{"tax", t.Tax, &out.Tax},
		{"shipping", t.Shipping, &out.Shipping},
		{"total", t.Total, &out.Total},
	} {
		d, err := v.parseAmount(part.in)
		if err != nil {
			errs["totals."+part.field] = err.Error()
			ok = false
			continue
		}
		*part.out = d
	}
	return out, ok
}

func (v *Validator) parseAmount(a Amount) (decimal.Decimal, error) {
	res := ValidateAmount(a.String(), v.limits)
	if !res.Valid {
		return decimal.Zero, errors.New(res.Error)
	}
	return decimal.RequireFromString(res.Formatted), nil
}

func (v *Validator) record(result ValidationResult) {
	if result.Valid {
		v.sink.ValidationPassed()
		return
	}
	for field := range result.Errors {
		v.sink.ValidationFailed(indexPattern.ReplaceAllString(field, "[]"))
	}
}
