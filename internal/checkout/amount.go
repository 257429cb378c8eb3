package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as it arrived from the storefront.
// The storefront sends totals either as JSON strings ("90.000") or as numbers (90),
// the raw text is kept so decimal places can be checked later.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

func (a Amount) String() string {
	return strings.TrimSpace(string(a))
}

func (a Amount) IsZero() bool {
	return a.String() == ""
}

func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.String())
}
