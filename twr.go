package returns

import (
	"fmt"
	"slices"

	"github.com/etnz/returns/date"
	"github.com/shopspring/decimal"
)

// HoldingPeriod is a sub-period of the time-weighted chain, between two
// consecutive cashflow dates.
type HoldingPeriod struct {
	Range      date.Range // the values are taken at the end of Range.From and Range.To
	StartValue Money
	EndValue   Money
	Flow       Money // net money put into the tracked accounts on Range.To
	Return     Rate  // undefined when StartValue is zero
}

func (p HoldingPeriod) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("from", p.Range.From)
	w.Append("to", p.Range.To)
	w.Append("startValue", p.StartValue)
	w.Append("endValue", p.EndValue)
	w.Append("flow", p.Flow)
	w.Append("return", p.Return)
	return w.MarshalJSON()
}

// TimeWeighted chains the holding period returns over rng.
//
// The chain starts with the value at the end of the day before rng.From, is
// cut at every date carrying a cashflow, and ends with the value of rng.To. A
// cashflow belongs to the period it closes. Periods starting with a zero value
// are excluded from the chain; the rate is undefined if all of them are.
func TimeWeighted(rng date.Range, flows []Cashflow, v Valuer) (Rate, []HoldingPeriod, error) {
	// net money put into the tracked accounts, per date.
	in := make(map[date.Date]decimal.Decimal)
	bounds := []date.Date{rng.From.Add(-1)}
	for _, c := range flows {
		if !rng.Contains(c.Date) {
			continue
		}
		if _, exists := in[c.Date]; !exists {
			bounds = append(bounds, c.Date)
		}
		in[c.Date] = in[c.Date].Sub(c.Amount.Decimal())
	}
	if _, exists := in[rng.To]; !exists {
		bounds = append(bounds, rng.To)
	}
	slices.SortFunc(bounds, date.Date.Compare)

	one := decimal.NewFromInt(1)
	growth := one
	defined := false
	periods := make([]HoldingPeriod, 0, len(bounds)-1)

	start, err := v.Value(bounds[0])
	if err != nil {
		return Rate{}, nil, fmt.Errorf("opening value: %w", err)
	}
	for k, on := range bounds[1:] {
		end, err := v.Value(on)
		if err != nil {
			return Rate{}, nil, fmt.Errorf("value on %s: %w", on, err)
		}
		flow := M(in[on], end.Currency())
		p := HoldingPeriod{
			Range:      date.Range{From: bounds[k], To: on},
			StartValue: start,
			EndValue:   end,
			Flow:       flow,
		}
		if !start.IsZero() {
			hpr := end.Sub(start).Sub(flow).Decimal().Div(start.Decimal())
			p.Return = NewRate(hpr)
			growth = growth.Mul(one.Add(hpr))
			defined = true
		}
		periods = append(periods, p)
		start = end
	}

	if !defined {
		return Rate{}, periods, nil
	}
	return NewRate(growth.Sub(one)), periods, nil
}
