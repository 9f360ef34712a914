package returns

import (
	"maps"
	"slices"

	"github.com/etnz/returns/date"
	"github.com/shopspring/decimal"
)

// Valuer values the tracked holdings at the end of a day.
type Valuer interface {
	Value(on date.Date) (Money, error)
}

// Holding is the position in one commodity on a given day.
type Holding struct {
	Commodity string
	Quantity  decimal.Decimal
	Price     decimal.Decimal // price of one unit in the reporting currency
	Value     Money
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("commodity", h.Commodity)
	w.Append("quantity", h.Quantity)
	w.Append("price", h.Price)
	w.Append("value", h.Value)
	return w.MarshalJSON()
}

// Valuation computes the market value of the tracked postings.
//
// Values are memoised per date, a Valuation must not outlive the computation
// it was built for.
type Valuation struct {
	postings []DatedPosting // in chronological order
	prices   *PriceIndex
	cache    map[date.Date]Money
}

// NewValuation returns a Valuation of postings, priced with prices.
func NewValuation(postings []DatedPosting, prices *PriceIndex) *Valuation {
	return &Valuation{
		postings: postings,
		prices:   prices,
		cache:    make(map[date.Date]Money),
	}
}

// quantities nets the units per commodity of all postings dated on or before 'on'.
func (v *Valuation) quantities(on date.Date) map[string]decimal.Decimal {
	q := make(map[string]decimal.Decimal)
	for _, p := range v.postings {
		if p.Date.After(on) {
			break
		}
		q[p.Units.Commodity] = q[p.Units.Commodity].Add(p.Units.Number)
	}
	return q
}

// Holdings returns the nonzero positions on 'on', sorted by commodity.
func (v *Valuation) Holdings(on date.Date) ([]Holding, error) {
	q := v.quantities(on)
	var holdings []Holding
	for _, commodity := range slices.Sorted(maps.Keys(q)) {
		qty := q[commodity]
		if qty.IsZero() {
			continue
		}
		price, err := v.prices.Price(commodity, on)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, Holding{
			Commodity: commodity,
			Quantity:  qty,
			Price:     price,
			Value:     M(qty.Mul(price), v.prices.Currency()),
		})
	}
	return holdings, nil
}

// Value returns the market value in the reporting currency of the tracked
// holdings at the end of 'on'. It is exactly zero before any tracked activity.
func (v *Valuation) Value(on date.Date) (Money, error) {
	if value, ok := v.cache[on]; ok {
		return value, nil
	}
	holdings, err := v.Holdings(on)
	if err != nil {
		return Money{}, err
	}
	value := M(0, v.prices.Currency())
	for _, h := range holdings {
		value = value.Add(h.Value)
	}
	v.cache[on] = value
	return value, nil
}
