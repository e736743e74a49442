package cashbuddy

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in the ledger's single decimal unit.
//
// Amounts are exact decimals: no binary floating point is involved in any
// ledger computation.
type Amount struct {
	value decimal.Decimal
}

// A is a convenient factory for Amount.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount               { return Amount{value: a.value.Abs()} }

// Truncate drops every digit after 'places' decimal places, rounding toward zero.
func (a Amount) Truncate(places int32) Amount { return Amount{value: a.value.Truncate(places)} }

// NearlyEqual reports whether a and b differ by strictly less than epsilon.
func (a Amount) NearlyEqual(b Amount, epsilon Amount) bool {
	return a.Sub(b).Abs().LessThan(epsilon)
}

// Ratio returns a/b as a float for display purposes (progress bars), or 0 when b is zero.
func (a Amount) Ratio(b Amount) float64 {
	if b.IsZero() {
		return 0
	}
	return a.value.Div(b.value).InexactFloat64()
}

// String returns the amount with exactly two decimal places.
func (a Amount) String() string { return a.value.StringFixed(2) }

// literal returns the amount as a decimal literal, in exponent notation when
// the plain form would be long.
func (a Amount) literal() string {
	if exp := a.value.Exponent(); exp < -20 || exp > 20 {
		return a.value.Coefficient().String() + "e" + strconv.Itoa(int(exp))
	}
	return a.value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.value.UnmarshalJSON(b)
}
