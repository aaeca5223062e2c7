// Package money holds prices as integer minor units so that
// unit price × seat count and fare differences stay exact.
package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a currency value in minor units (two decimals).
type Amount int64

const minorUnits = 100

// FromMajor converts a whole currency value, e.g. 500 rupees, into an Amount.
func FromMajor(major int64) Amount {
	return Amount(major * minorUnits)
}

// Parse reads a decimal string such as "650", "650.5" or "-12.75".
func Parse(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty amount")
	}

	raw := value
	negative := false

	switch value[0] {
	case '-':
		negative = true
		value = value[1:]
	case '+':
		value = value[1:]
	}

	whole, fraction, _ := strings.Cut(value, ".")
	if whole == "" && fraction == "" {
		return 0, fmt.Errorf("invalid amount %q: no digits", raw)
	}

	if !digitsOnly(whole) || !digitsOnly(fraction) {
		return 0, fmt.Errorf("invalid amount %q: only digits and one decimal point are allowed", raw)
	}

	if whole == "" {
		whole = "0"
	}

	if len(fraction) > 2 {
		// upstream BigDecimal values may carry trailing zeros
		if strings.Trim(fraction[2:], "0") != "" {
			return 0, fmt.Errorf("amount %q has more than two decimals", raw)
		}

		fraction = fraction[:2]
	}

	fraction += strings.Repeat("0", 2-len(fraction))

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	minor, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	amount := Amount(major*minorUnits + minor)
	if negative {
		amount = -amount
	}

	return amount, nil
}

func digitsOnly(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}

	return true
}

// Times multiplies the amount by a count, used for price × seats.
func (a Amount) Times(count int) Amount {
	return a * Amount(count)
}

// Sub returns a - other.
func (a Amount) Sub(other Amount) Amount {
	return a - other
}

// Abs returns the magnitude of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}

	return a
}

// Sign returns -1, 0 or 1.
func (a Amount) Sign() int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// String renders the amount with two decimals.
func (a Amount) String() string {
	sign := ""
	value := int64(a)

	if value < 0 {
		sign = "-"
		value = -value
	}

	return fmt.Sprintf("%s%d.%02d", sign, value/minorUnits, value%minorUnits)
}

// MarshalJSON writes the amount as a JSON number, matching the upstream decimal fields.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0

		return nil
	}

	var raw json.Number
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode amount: %w", err)
		}

		raw = json.Number(s)
	} else {
		raw = json.Number(data)
	}

	// exponent notation is how some serializers print round BigDecimals
	if strings.ContainsAny(raw.String(), "eE") {
		f, err := raw.Float64()
		if err != nil {
			return fmt.Errorf("failed to decode amount: %w", err)
		}

		raw = json.Number(strconv.FormatFloat(f, 'f', 2, 64))
	}

	parsed, err := Parse(raw.String())
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
