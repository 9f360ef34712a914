package returns

import (
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/returns/date"
	"github.com/shopspring/decimal"
)

// Cashflow is money moving between the tracked accounts and the outside world.
//
// A negative Amount is money put into the tracked accounts (a deposit, a buy
// paid from an external account), a positive Amount is money taken out.
type Cashflow struct {
	Date      date.Date
	Amount    Money
	Narration string
	Inflows   []string // external accounts the money came from
	Outflows  []string // external accounts the money went to
}

func (c Cashflow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", c.Date)
	w.Append("amount", c.Amount)
	w.Optional("narration", c.Narration)
	w.Optional("inflows", c.Inflows)
	w.Optional("outflows", c.Outflows)
	return w.MarshalJSON()
}

// Diagnostics lists the accounts seen while extracting cashflows, to help
// refine the classification patterns. It never changes any result.
type Diagnostics struct {
	Inflows  []string // external accounts that sourced money
	Outflows []string // external accounts that received money
	Internal []string // internal accounts seen along tracked accounts
}

// External returns every external account seen, sorted.
func (d Diagnostics) External() []string {
	all := slices.Concat(d.Inflows, d.Outflows)
	slices.Sort(all)
	return slices.Compact(all)
}

func (d Diagnostics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("inflows", d.Inflows)
	w.Optional("outflows", d.Outflows)
	w.Optional("internal", d.Internal)
	return w.MarshalJSON()
}

// Extraction is the result of Extract.
type Extraction struct {
	Cashflows   []Cashflow     // external cashflows within the range, by date
	Postings    []DatedPosting // every tracked posting up to the end of the range
	Diagnostics Diagnostics
}

// FirstDate returns the date of the first tracked posting, or the zero date.
func (x *Extraction) FirstDate() date.Date {
	if len(x.Postings) == 0 {
		return date.Date{}
	}
	return x.Postings[0].Date
}

// HasActivity reports whether a tracked posting is dated within rng.
func (x *Extraction) HasActivity(rng date.Range) bool {
	for _, p := range x.Postings {
		if rng.Contains(p.Date) {
			return true
		}
	}
	return false
}

// set collects distinct strings.
type set map[string]struct{}

func (s set) add(v string)     { s[v] = struct{}{} }
func (s set) sorted() []string { return slices.Sorted(maps.Keys(s)) }

// Extract walks the ledger and returns the external cashflows of the tracked
// accounts dated within rng, and all the tracked postings up to rng.To.
//
// Every transaction touching a tracked account must balance within tol in
// each of its weight currencies, otherwise it fails with an
// *UnresolvableTransactionError.
func Extract(l *Ledger, c *Classifier, p *PriceIndex, rng date.Range, tol decimal.Decimal) (*Extraction, error) {
	x := new(Extraction)
	inflows, outflows, internal := set{}, set{}, set{}

	for _, tx := range l.Transactions() {
		if tx.Date.After(rng.To) {
			break
		}

		classes := make([]Class, len(tx.Postings))
		tracked := false
		for i, posting := range tx.Postings {
			class, err := c.Classify(posting.Account)
			if err != nil {
				return nil, fmt.Errorf("transaction %s %q: %w", tx.Date, tx.Narration, err)
			}
			classes[i] = class
			tracked = tracked || class == Tracked
		}
		if !tracked {
			continue
		}
		if err := checkBalance(tx, tol); err != nil {
			return nil, err
		}

		for i, posting := range tx.Postings {
			if classes[i] == Tracked {
				x.Postings = append(x.Postings, DatedPosting{Date: tx.Date, Posting: posting})
			}
		}
		if !rng.Contains(tx.Date) {
			continue
		}

		external := false
		amount := M(0, p.Currency())
		in, out := set{}, set{}
		for i, posting := range tx.Postings {
			switch classes[i] {
			case Internal:
				internal.add(posting.Account)
				continue
			case Tracked:
				continue
			}
			external = true
			weight := posting.Weight()
			m, err := p.Convert(weight, tx.Date)
			if err != nil {
				return nil, fmt.Errorf("transaction %s %q: %w", tx.Date, tx.Narration, err)
			}
			amount = amount.Add(m)
			switch {
			case weight.Number.IsNegative():
				in.add(posting.Account)
				inflows.add(posting.Account)
			case weight.Number.IsPositive():
				out.add(posting.Account)
				outflows.add(posting.Account)
			}
		}
		if !external {
			continue // tracked and internal only: reflected in the valuation
		}
		amount = amount.Round()
		if amount.IsZero() {
			continue
		}
		x.Cashflows = append(x.Cashflows, Cashflow{
			Date:      tx.Date,
			Amount:    amount,
			Narration: tx.Narration,
			Inflows:   in.sorted(),
			Outflows:  out.sorted(),
		})
	}

	x.Diagnostics = Diagnostics{
		Inflows:  inflows.sorted(),
		Outflows: outflows.sorted(),
		Internal: internal.sorted(),
	}
	return x, nil
}

// checkBalance checks that the weights of tx sum to zero in each currency.
func checkBalance(tx Transaction, tol decimal.Decimal) error {
	sums := make(map[string]decimal.Decimal)
	for _, posting := range tx.Postings {
		w := posting.Weight()
		sums[w.Commodity] = sums[w.Commodity].Add(w.Number)
	}
	for _, commodity := range slices.Sorted(maps.Keys(sums)) {
		if sums[commodity].Abs().GreaterThan(tol) {
			return &UnresolvableTransactionError{
				Date:      tx.Date,
				Narration: tx.Narration,
				Currency:  commodity,
				Residual:  sums[commodity],
			}
		}
	}
	return nil
}
