package returns

import (
	"slices"

	"github.com/etnz/returns/date"
	"github.com/shopspring/decimal"
)

// pair identifies an exchange rate: one unit of base is worth rate units of quote.
type pair struct{ base, quote string }

// PriceIndex answers the price of any commodity in the reporting currency as of a day.
//
// A PriceIndex is built once per computation and never mutated afterwards.
type PriceIndex struct {
	currency string
	pairs    map[pair]*date.History[decimal.Decimal]
	quotes   map[string][]string // sorted quote currencies known for a base
}

// NewPriceIndex indexes price points for conversions into currency.
func NewPriceIndex(currency string, points []PricePoint) *PriceIndex {
	p := &PriceIndex{
		currency: currency,
		pairs:    make(map[pair]*date.History[decimal.Decimal]),
		quotes:   make(map[string][]string),
	}
	for _, pp := range points {
		k := pair{pp.Commodity, pp.Price.Commodity}
		h, ok := p.pairs[k]
		if !ok {
			h = new(date.History[decimal.Decimal])
			p.pairs[k] = h
			p.quotes[k.base] = append(p.quotes[k.base], k.quote)
			slices.Sort(p.quotes[k.base])
		}
		h.Append(pp.Date, pp.Price.Number)
	}
	return p
}

// Currency returns the reporting currency.
func (p *PriceIndex) Currency() string { return p.currency }

// rate returns the direct rate base/quote as of 'on', or the inverse of quote/base.
func (p *PriceIndex) rate(base, quote string, on date.Date) (decimal.Decimal, bool) {
	if base == quote {
		return decimal.NewFromInt(1), true
	}
	if h, ok := p.pairs[pair{base, quote}]; ok {
		if r, ok := h.ValueAsOf(on); ok {
			return r, true
		}
	}
	if h, ok := p.pairs[pair{quote, base}]; ok {
		if r, ok := h.ValueAsOf(on); ok && !r.IsZero() {
			return decimal.NewFromInt(1).Div(r), true
		}
	}
	return decimal.Decimal{}, false
}

// Price returns the latest price of one unit of commodity in the reporting
// currency, with a date on or before 'on'.
//
// When no pair links commodity and the reporting currency, the price is
// derived through one of the commodity's quote currencies (e.g. a fund priced
// in EUR, reported in USD).
func (p *PriceIndex) Price(commodity string, on date.Date) (decimal.Decimal, error) {
	if r, ok := p.rate(commodity, p.currency, on); ok {
		return r, nil
	}
	for _, via := range p.quotes[commodity] {
		first, ok := p.rate(commodity, via, on)
		if !ok {
			continue
		}
		if second, ok := p.rate(via, p.currency, on); ok {
			return first.Mul(second), nil
		}
	}
	return decimal.Decimal{}, &PriceUnavailableError{Commodity: commodity, Currency: p.currency, Date: on}
}

// Convert converts an amount into the reporting currency at the price of 'on'.
func (p *PriceIndex) Convert(a Amount, on date.Date) (Money, error) {
	if a.IsZero() {
		return M(0, p.currency), nil
	}
	price, err := p.Price(a.Commodity, on)
	if err != nil {
		return Money{}, err
	}
	return M(a.Number.Mul(price), p.currency), nil
}
