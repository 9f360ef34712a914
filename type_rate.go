package returns

import "github.com/shopspring/decimal"

// Rate is a rate of return as a ratio (0.05 for 5%).
//
// The zero value is an undefined rate: a return that cannot be computed is never
// reported as 0%.
type Rate struct {
	value   decimal.Decimal
	defined bool
}

// NewRate returns a defined rate.
func NewRate(ratio decimal.Decimal) Rate { return Rate{value: ratio, defined: true} }

// RateFromFloat returns a defined rate from a float ratio.
func RateFromFloat(ratio float64) Rate { return NewRate(decimal.NewFromFloat(ratio)) }

func (r Rate) Defined() bool            { return r.defined }
func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) Float64() float64         { return r.value.InexactFloat64() }

// Equal compares two rates up to a basis point hundredth.
func (r Rate) Equal(q Rate) bool {
	if r.defined != q.defined {
		return false
	}
	const precision = 0.000001
	diff := r.value.Sub(q.value).Abs()
	return diff.LessThan(decimal.NewFromFloat(precision))
}

func (r Rate) String() string {
	if !r.defined {
		return "n/a"
	}
	return r.value.Shift(2).StringFixed(2) + "%"
}

func (r Rate) SignedString() string {
	if !r.defined {
		return "n/a"
	}
	pct := r.value.Shift(2).Round(2)
	if pct.IsZero() {
		return "-"
	}
	if pct.IsPositive() {
		return "+" + pct.StringFixed(2) + "%"
	}
	return pct.StringFixed(2) + "%"
}

// MarshalJSON encodes the ratio as a number, or null when undefined.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return []byte(r.value.Round(8).String()), nil
}
