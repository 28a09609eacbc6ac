package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a lenient numeric form field. It accepts JSON numbers and numeric
// strings; null, booleans, blank or non-numeric strings decode as absent.
type Number struct {
	Value decimal.Decimal
	Valid bool
	raw   string
}

func NewNumber(v decimal.Decimal) Number {
	return Number{Value: v, Valid: true, raw: v.String()}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}

	v, err := decimal.NewFromString(text)
	if err != nil {
		return nil
	}
	*n = Number{Value: v, Valid: true, raw: text}
	return nil
}

// Text returns the value as it was posted, cut to a printable length.
// Value.String can be arbitrarily expensive for large exponents.
func (n Number) Text() string {
	const maxText = 32
	if len(n.raw) > maxText {
		return n.raw[:maxText] + "..."
	}
	return n.raw
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Value.String()), nil
}

// Or returns the value, or def when the field was absent or not numeric.
func (n Number) Or(def decimal.Decimal) decimal.Decimal {
	if !n.Valid {
		return def
	}
	return n.Value
}
