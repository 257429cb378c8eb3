package checkout_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSink struct {
	passed     int
	failed     map[string]int
	mismatches map[string]int
}

func newCountingSink() *countingSink {
	return &countingSink{failed: map[string]int{}, mismatches: map[string]int{}}
}

func (s *countingSink) ValidationPassed() { s.passed++ }
func (s *countingSink) ValidationFailed(field string) { s.failed[field]++ }
func (s *countingSink) TotalsMismatch(field string) { s.mismatches[field]++ }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReconciler_Reconcile(t *testing.T) {
	items := []checkout.LineItem{
		{UnitPrice: dec("45.000"), Quantity: 2},
	}

	testCases := []struct {
		name      string
		items     []checkout.LineItem
		totals    checkout.TotalsBreakdown
		wantField string
	}{
		{
			name:   "consistent totals",
			items:  items,
			totals: checkout.TotalsBreakdown{Subtotal: dec("90.000"), Tax: dec("4.500"), Shipping: dec("5.000"), Total: dec("99.500")},
		},
		{
			name:   "drift within tolerance",
			items:  items,
			totals: checkout.TotalsBreakdown{Subtotal: dec("90.001"), Tax: dec("4.500"), Shipping: dec("5.000"), Total: dec("99.500")},
		},
		{
			name:      "tampered total",
			items:     items,
			totals:    checkout.TotalsBreakdown{Subtotal: dec("90.000"), Tax: dec("4.500"), Shipping: dec("5.000"), Total: dec("200.000")},
			wantField: "total",
		},
		{
			name:      "tampered subtotal",
			items:     items,
			totals:    checkout.TotalsBreakdown{Subtotal: dec("80.000"), Tax: dec("4.500"), Shipping: dec("5.000"), Total: dec("89.500")},
			wantField: "subtotal",
		},
		{
			name:      "negative tax",
			items:     items,
			totals:    checkout.TotalsBreakdown{Subtotal: dec("90.000"), Tax: dec("-4.500"), Shipping: dec("5.000"), Total: dec("90.500")},
			wantField: "tax",
		},
		{
			name:      "negative shipping",
			items:     items,
			totals:    checkout.TotalsBreakdown{Subtotal: dec("90.000"), Tax: dec("0"), Shipping: dec("-1"), Total: dec("89.000")},
			wantField: "shipping",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sink := newCountingSink()
			r := checkout.NewReconciler(slog.New(slog.NewTextHandler(io.Discard, nil)), sink)

			err := r.Reconcile(tc.items, tc.totals)
			if tc.wantField == "" {
				assert.NoError(t, err)
				assert.Empty(t, sink.mismatches)
				return
			}

			var m *checkout.Mismatch
			require.ErrorAs(t, err, &m)
			assert.Equal(t, tc.wantField, m.Field)
			assert.Equal(t, 1, sink.mismatches[tc.wantField])
		})
	}
}

func TestReconciler_Symmetry(t *testing.T) {
	r := checkout.NewReconciler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	carts := [][]checkout.LineItem{
		{{UnitPrice: dec("0.001"), Quantity: 1}},
		{{UnitPrice: dec("12.345"), Quantity: 3}, {UnitPrice: dec("7.125"), Quantity: 7}},
		{{UnitPrice: dec("1.100"), Quantity: 10}, {UnitPrice: dec("2.200"), Quantity: 10}, {UnitPrice: dec("3.300"), Quantity: 10}},
		{{UnitPrice: dec("999.999"), Quantity: 99}},
	}
	fees := []struct{ tax, shipping string }{{"0", "0"}, {"1.234", "2.000"}, {"0.050", "0.001"}}

	for _, items := range carts {
		subtotal := decimal.Zero
		for _, it := range items {
			subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		for _, f := range fees {
			totals := checkout.TotalsBreakdown{
				Subtotal: subtotal,
				Tax:      dec(f.tax),
				Shipping: dec(f.shipping),
			}
			totals.Total = totals.Subtotal.Add(totals.Tax).Add(totals.Shipping)

			assert.NoError(t, r.Reconcile(items, totals))

			tampered := totals
			tampered.Total = totals.Total.Add(dec("0.0011"))
			assert.Error(t, r.Reconcile(items, tampered))

			tampered.Total = totals.Total.Sub(dec("0.002"))
			assert.Error(t, r.Reconcile(items, tampered))
		}
	}
}

func TestReconciler_ToleranceBoundary(t *testing.T) {
	r := checkout.NewReconciler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	items := []checkout.LineItem{{UnitPrice: dec("10.000"), Quantity: 1}}

	exact := checkout.TotalsBreakdown{Subtotal: dec("10.000"), Tax: dec("0"), Shipping: dec("0"), Total: dec("10.001")}
	assert.NoError(t, r.Reconcile(items, exact))

	over := exact
	over.Total = dec("10.0011")
	assert.Error(t, r.Reconcile(items, over))
}
