package settle

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in a single currency.
//
// The value is kept as an exact decimal for the whole computation; it is
// rounded to the currency's minor unit only when formatting.
type Amount struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal.
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

// A creates an Amount from a numeric value and a currency code.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

// currency returns the amount's currency, never nil.
func (a Amount) currency() money.Currency {
	// to get a never nil currency the money constructor must be used
	return *money.New(0, a.cur).Currency()
}

// Currency returns the currency code of the amount.
func (a Amount) Currency() string { return a.cur }

// String returns the amount formatted in its currency, rounded to the
// currency's minor unit. This is the report boundary: internal arithmetic
// never goes through it.
func (a Amount) String() string {
	cur := a.currency()
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the formatted amount with an explicit sign.
// Zero is represented as "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

func (a Amount) Equal(b Amount) bool            { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) IsZero() bool                   { return a.value.IsZero() }
func (a Amount) IsPositive() bool               { return a.value.IsPositive() }
func (a Amount) IsNegative() bool               { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool         { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool      { return a.value.GreaterThan(b.value) }
func (a Amount) Cmp(b Amount) int               { return a.value.Cmp(b.value) }
func (a Amount) Neg() Amount                    { return Amount{value: a.value.Neg(), cur: a.cur} }
func (a Amount) Abs() Amount                    { return Amount{value: a.value.Abs(), cur: a.cur} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value), cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value), cur: cur(a, b)} }

// Min returns the smaller of a and b.
func (a Amount) Min(b Amount) Amount {
	if b.LessThan(a) {
		return b
	}
	return a
}

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MinorUnit returns the smallest representable amount in this currency
// (e.g. one cent for EUR). It is the rounding unit of the integrity check.
func (a Amount) MinorUnit() Amount {
	return Amount{value: decimal.New(1, -int32(a.currency().Fraction)), cur: a.cur}
}

// IsMinorExact reports whether the amount is exactly representable in its
// currency's minor unit, e.g. 12.34 EUR but not 12.345 EUR.
func (a Amount) IsMinorExact() bool {
	return a.value.Shift(int32(a.currency().Fraction)).IsInteger()
}

// Split divides the amount into n parts that sum exactly to the whole.
// Every part is exact in minor units; when the division leaves a remainder,
// the leftover minor units go to the first parts, one each.
func (a Amount) Split(n int) ([]Amount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cannot split %s into %d parts", a, n)
	}
	if !a.IsMinorExact() {
		return nil, fmt.Errorf("cannot split %s: not exact in minor units", a)
	}
	fraction := int32(a.currency().Fraction)
	cents := a.value.Shift(fraction)
	nn := decimal.NewFromInt(int64(n))

	base := cents.Div(nn).Floor()
	remainder := int(cents.Sub(base.Mul(nn)).IntPart())

	parts := make([]Amount, n)
	for i := range parts {
		share := base
		if i < remainder {
			share = share.Add(decimal.NewFromInt(1))
		}
		parts[i] = Amount{value: share.Shift(-fraction), cur: a.cur}
	}
	return parts, nil
}

// FixedString returns the plain decimal digits of the amount rounded to the
// currency's minor unit, e.g. "12.30". No currency symbol: this is the cell
// form for spreadsheets, not the display form.
func (a Amount) FixedString() string {
	return a.value.StringFixed(int32(a.currency().Fraction))
}

// Float64 returns the amount rounded to the minor unit as a float64, for
// numeric spreadsheet cells. Report boundary only.
func (a Amount) Float64() float64 {
	f, _ := a.value.Round(int32(a.currency().Fraction)).Float64()
	return f
}

// MarshalJSON implements the json.Marshaler interface for Amount.
// Only the numeric value is persisted; the currency is a property of the
// book, not of every record.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}
