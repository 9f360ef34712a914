package returns

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

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

// Amount is a quantity of a commodity, like "1000 ABC" or "-2,500.00 USD".
type Amount struct {
	Number    decimal.Decimal
	Commodity string
}

// ParseAmount parses "<number> <commodity>". Thousands separators are accepted.
func ParseAmount(s string) (Amount, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Amount{}, fmt.Errorf("invalid amount %q want format \"<number> <commodity>\"", s)
	}
	n, err := decimal.NewFromString(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid number in amount %q: %w", s, err)
	}
	return Amount{Number: n, Commodity: fields[1]}, nil
}

func (a Amount) String() string               { return a.Number.String() + " " + a.Commodity }
func (a Amount) IsZero() bool                 { return a.Number.IsZero() }
func (a Amount) Mul(q decimal.Decimal) Amount { return Amount{Number: a.Number.Mul(q), Commodity: a.Commodity} }

// MarshalJSON encodes the amount as a single string.
func (a Amount) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
