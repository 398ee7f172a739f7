// internal/domain/common/decimal.go
package common

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

var ErrInvalidDecimal = errors.New("common: invalid decimal")

// Decimal is an exact decimal used for prices, quantities and totals.
//
// JSON wire rule: integral values are written without a fractional part (24.00 -> 24),
// non-integral values keep their full precision (10.50 -> 10.5). Both are JSON numbers.
type Decimal struct {
	decimal.Decimal
}

var Zero = Decimal{decimal.Zero}

func DecimalFromInt(n int64) Decimal { return Decimal{decimal.NewFromInt(n)} }

// Bounds on accepted input. The wire form is rendered in full, so an
// exponent like 1e30000000 would otherwise expand to millions of digits.
const (
	MaxIntegerDigits  = 30
	MaxFractionDigits = 18
)

// ParseDecimal parses s ("10.5", "2", "1e3") and rejects values outside
// MaxIntegerDigits/MaxFractionDigits.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	if err := checkBounds(d); err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", err, s)
	}
	return Decimal{d}, nil
}

func checkBounds(d decimal.Decimal) error {
	if d.IsZero() {
		return nil
	}
	exp := int64(d.Exponent())
	if -exp > MaxFractionDigits {
		return fmt.Errorf("%w: more than %d fractional digits", ErrInvalidDecimal, MaxFractionDigits)
	}
	if int64(d.NumDigits())+exp > MaxIntegerDigits {
		return fmt.Errorf("%w: more than %d integer digits", ErrInvalidDecimal, MaxIntegerDigits)
	}
	return nil
}

// MustDecimal is ParseDecimal for constants and tests.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) Add(o Decimal) Decimal { return Decimal{d.Decimal.Add(o.Decimal)} }

func (d Decimal) Mul(o Decimal) Decimal { return Decimal{d.Decimal.Mul(o.Decimal)} }

func (d Decimal) Equal(o Decimal) bool { return d.Decimal.Equal(o.Decimal) }

// WireString is the canonical text form (trailing zeros dropped).
func (d Decimal) WireString() string {
	return d.Decimal.String()
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.WireString()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string ("2", "10.50").
func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidDecimal)
	}
	s := string(b)
	if b[0] == '"' {
		uq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidDecimal, s)
		}
		s = uq
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
