package mymoney

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
	default:
		panic("unsupported type")
	}
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Amount is a monetary balance. Balances are whole currency units: every
// store truncates toward zero, so 6000.5 becomes 6000 and -2.5 becomes -2.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount, applying the truncation policy.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value).Truncate(0)}
}

// Add returns the amount increased by value, truncated toward zero.
func (a Amount) Add(value decimal.Decimal) Amount {
	return Amount{value: a.value.Add(value).Truncate(0)}
}

// ApplyRate grows the amount by a fractional rate (0.13 for 13%) and
// truncates toward zero.
func (a Amount) ApplyRate(rate decimal.Decimal) Amount {
	return Amount{value: a.value.Mul(one.Add(rate)).Truncate(0)}
}

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool             { return a.value.IsZero() }

// Int returns the amount as a plain integer.
func (a Amount) Int() int64 { return a.value.IntPart() }

// String prints the amount as a plain integer, the wire format of balance
// output lines.
func (a Amount) String() string { return a.value.String() }
