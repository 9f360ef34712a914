package date

import (
	"fmt"
	"strings"
)

// Horizon is a trailing look-back window ending on a given date.
type Horizon int

const (
	OneMonth Horizon = iota
	ThreeMonths
	SixMonths
	YearToDate
	OneYear
	TwoYears
	ThreeYears
	FiveYears
	TenYears
)

// Horizons lists all the horizons from the shortest to the longest.
var Horizons = []Horizon{OneMonth, ThreeMonths, SixMonths, YearToDate, OneYear, TwoYears, ThreeYears, FiveYears, TenYears}

func (h Horizon) String() string {
	switch h {
	case OneMonth:
		return "1month"
	case ThreeMonths:
		return "3months"
	case SixMonths:
		return "6months"
	case YearToDate:
		return "ytd"
	case OneYear:
		return "1year"
	case TwoYears:
		return "2year"
	case ThreeYears:
		return "3year"
	case FiveYears:
		return "5year"
	case TenYears:
		return "10year"
	default:
		return fmt.Sprintf("horizon(%d)", int(h))
	}
}

// Range returns the window of the horizon that ends on 'on'.
//
// A trailing window starts on the same calendar day in the past, so that one year
// ending on 2024-12-01 is 2023-12-01..2024-12-01. A day missing from the
// starting month is the last day of that month.
func (h Horizon) Range(on Date) Range {
	var from Date
	switch h {
	case OneMonth:
		from = on.AddMonth(-1)
	case ThreeMonths:
		from = on.AddMonth(-3)
	case SixMonths:
		from = on.AddMonth(-6)
	case YearToDate:
		from = on.StartOf(Yearly)
	case OneYear:
		from = on.AddYear(-1)
	case TwoYears:
		from = on.AddYear(-2)
	case ThreeYears:
		from = on.AddYear(-3)
	case FiveYears:
		from = on.AddYear(-5)
	case TenYears:
		from = on.AddYear(-10)
	default:
		panic("unknown horizon")
	}
	return Range{From: from, To: on}
}

// ParseHorizon parses the name of a horizon as returned by String.
func ParseHorizon(s string) (Horizon, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, h := range Horizons {
		if h.String() == s {
			return h, nil
		}
	}
	switch s {
	case "1years", "1y":
		return OneYear, nil
	case "2years", "2y":
		return TwoYears, nil
	case "3years", "3y":
		return ThreeYears, nil
	case "5years", "5y":
		return FiveYears, nil
	case "10years", "10y":
		return TenYears, nil
	}
	return OneMonth, fmt.Errorf("unknown horizon %q", s)
}
