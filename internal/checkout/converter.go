package checkout

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	localPlaces      = 3
	settlementPlaces = 2
)

// Converter turns local currency amounts (OMR, 3 decimals) into the gateway
// settlement currency (USD, 2 decimals) using a fixed rate.
//
// Float inputs go through decimal.NewFromFloat, which keeps the shortest
// representation of the double. Very large inputs therefore carry the usual
// IEEE-754 error of the caller's float, nothing is corrected here.
type Converter struct {
	rate decimal.Decimal
}

func NewConverter(rate float64) Converter {
	return Converter{rate: decimal.NewFromFloat(rate)}
}

func (c Converter) Rate() decimal.Decimal {
	return c.rate
}

// Convert returns amountLocal*rate rounded half-up to 2 places, e.g. "117.00".
// Non-finite input is not validated.
func (c Converter) Convert(amountLocal float64) string {
	if math.IsNaN(amountLocal) || math.IsInf(amountLocal, 0) {
		return strconv.FormatFloat(amountLocal*c.rate.InexactFloat64(), 'f', settlementPlaces, 64)
	}
	return c.ConvertDecimal(decimal.NewFromFloat(amountLocal)).StringFixed(settlementPlaces)
}

func (c Converter) ConvertDecimal(amountLocal decimal.Decimal) decimal.Decimal {
	return amountLocal.Mul(c.rate).Round(settlementPlaces)
}

// FormatLocal renders a local currency amount with 3 decimal places.
func FormatLocal(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', localPlaces, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(localPlaces)
}
