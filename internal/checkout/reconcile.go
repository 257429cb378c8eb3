package checkout

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

// Tolerance is the largest accepted difference between recomputed and claimed totals.
// It is a hundredth of the OMR minor unit and must stay fixed.
var Tolerance = decimal.New(1, -3)

type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type TotalsBreakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Mismatch describes why a totals breakdown was rejected.
type Mismatch struct {
	Field      string
	Calculated decimal.Decimal
	Provided   decimal.Decimal
	Delta      decimal.Decimal
}

func (m *Mismatch) Error() string {
	if m.Field != "subtotal" && m.Field != "total" {
		return fmt.Sprintf("%s must not be negative", m.Field)
	}
	return fmt.Sprintf("%s mismatch: calculated %s, provided %s",
		m.Field, m.Calculated.StringFixed(localPlaces), m.Provided.StringFixed(localPlaces))
}

type Reconciler struct {
	logger *slog.Logger
	sink   MetricsSink
}

func NewReconciler(logger *slog.Logger, sink MetricsSink) *Reconciler {
	if sink == nil {
		sink = NopSink{}
	}
	return &Reconciler{
		logger: logger.With(slog.String("component", "reconciler")),
		sink:   sink,
	}
}

// Reconcile returns nil when the breakdown is consistent with the items,
// otherwise a *Mismatch for the first violated rule.
func (r *Reconciler) Reconcile(items []LineItem, totals TotalsBreakdown) error {
	for _, part := range []struct {
		field string
		value decimal.Decimal
	}{
		{"subtotal", totals.Subtotal},
		{"tax", totals.Tax},
		{"shipping", totals.Shipping},
	} {
		if part.value.IsNegative() {
			return r.reject(&Mismatch{Field: part.field, Provided: part.value})
		}
	}

	calculatedSubtotal := decimal.Zero
	for _, it := range items {
		calculatedSubtotal = calculatedSubtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	if delta := calculatedSubtotal.Sub(totals.Subtotal).Abs(); delta.GreaterThan(Tolerance) {
		return r.reject(&Mismatch{
			Field:      "subtotal",
			Calculated: calculatedSubtotal,
			Provided:   totals.Subtotal,
			Delta:      delta,
		})
	}

	// the claimed subtotal is used here, it was already checked against the items
	calculatedTotal := totals.Subtotal.Add(totals.Tax).Add(totals.Shipping)
	if delta := calculatedTotal.Sub(totals.Total).Abs(); delta.GreaterThan(Tolerance) {
		return r.reject(&Mismatch{
			Field:      "total",
			Calculated: calculatedTotal,
			Provided:   totals.Total,
			Delta:      delta,
		})
	}

	return nil
}

func (r *Reconciler) reject(m *Mismatch) error {
	r.logger.Warn("order totals mismatch",
		slog.String("field", m.Field),
		slog.String("calculated", m.Calculated.StringFixed(localPlaces)),
		slog.String("provided", m.Provided.StringFixed(localPlaces)),
		slog.String("delta", m.Delta.StringFixed(localPlaces)),
	)
	r.sink.TotalsMismatch(m.Field)
	return m
}
