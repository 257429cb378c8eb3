package checkout_test

import (
	"regexp"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConverter_Convert(t *testing.T) {
	testCases := []struct {
		name   string
		rate   float64
		amount float64
		want   string
	}{
		{name: "zero", rate: 2.6, amount: 0, want: "0.00"},
		{name: "whole amount", rate: 2.6, amount: 45.000, want: "117.00"},
		{name: "three decimals", rate: 2.6, amount: 99.5, want: "258.70"},
		{name: "rounds half up", rate: 1, amount: 1.005, want: "1.01"},
		{name: "rounds down below half", rate: 1, amount: 1.004, want: "1.00"},
		{name: "minor unit", rate: 2.6, amount: 0.001, want: "0.00"},
		{name: "large amount", rate: 2.6, amount: 999999.999, want: "2600000.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := checkout.NewConverter(tc.rate)
			assert.Equal(t, tc.want, c.Convert(tc.amount))
		})
	}
}

func TestConverter_Properties(t *testing.T) {
	c := checkout.NewConverter(2.6)
	format := regexp.MustCompile(`^-?\d+\.\d{2}$`)

	inputs := []float64{0, 0.001, 0.005, 1, 12.345, 45, 100.999, 1234.5678, 1e9, 1e15, -3.25}
	for _, x := range inputs {
		first := c.Convert(x)
		assert.Equal(t, first, c.Convert(x), "conversion of %v is not deterministic", x)
		assert.Regexp(t, format, first, "conversion of %v", x)
	}
}

func TestConverter_ConvertDecimal(t *testing.T) {
	c := checkout.NewConverter(2.6)
	got := c.ConvertDecimal(decimal.RequireFromString("4.500"))
	assert.Equal(t, "11.70", got.StringFixed(2))
	assert.Equal(t, "2.6", c.Rate().String())
}

func TestFormatLocal(t *testing.T) {
	assert.Equal(t, "90.000", checkout.FormatLocal(90))
	assert.Equal(t, "4.500", checkout.FormatLocal(4.5))
	assert.Equal(t, "0.001", checkout.FormatLocal(0.001))
}
