package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a monetary value with proper financial precision.
// Simulation math runs in float64; Amount is the boundary type every
// report and formatter goes through so figures render consistently.
type Amount struct {
	decimal.Decimal
}

// New creates an Amount from a float64.
func New(value float64) Amount {
	return Amount{decimal.NewFromFloat(value)}
}

// FromDecimal creates an Amount from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// FromString creates an Amount from a string.
func FromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// Round rounds to pence using banker's rounding.
func (a Amount) Round() Amount {
	return Amount{a.Decimal.Round(2)}
}

// Add adds another amount.
func (a Amount) Add(other Amount) Amount {
	return Amount{a.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (a Amount) Sub(other Amount) Amount {
	return Amount{a.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{a.Decimal.Mul(factor)}
}

// MulFloat multiplies by a float64 factor.
func (a Amount) MulFloat(factor float64) Amount {
	return Amount{a.Decimal.Mul(decimal.NewFromFloat(factor))}
}

// Div divides by a decimal factor.
func (a Amount) Div(factor decimal.Decimal) Amount {
	return Amount{a.Decimal.Div(factor)}
}

// GreaterThan reports whether this amount exceeds another.
func (a Amount) GreaterThan(other Amount) bool {
	return a.Decimal.GreaterThan(other.Decimal)
}

// LessThan reports whether this amount is below another.
func (a Amount) LessThan(other Amount) bool {
	return a.Decimal.LessThan(other.Decimal)
}

// Equal reports whether two amounts are equal.
func (a Amount) Equal(other Amount) bool {
	return a.Decimal.Equal(other.Decimal)
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.Decimal.IsZero()
}

// IsNegative reports whether the amount is negative.
func (a Amount) IsNegative() bool {
	return a.Decimal.IsNegative()
}

// Min returns the smaller of two amounts.
func Min(a, b Amount) Amount {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero amount.
func Zero() Amount {
	return Amount{decimal.Zero}
}

// String returns the plain two-decimal representation.
func (a Amount) String() string {
	return a.Decimal.StringFixed(2)
}

// Format renders the amount as sterling with thousands separators,
// e.g. "£1,234,567.89". Negative amounts keep the sign before the symbol.
func (a Amount) Format() string {
	s := a.Decimal.Abs().StringFixed(2)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if a.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("£")
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}
