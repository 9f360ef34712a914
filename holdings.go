package returns

import "github.com/etnz/returns/date"

// HoldingReport is the valuation of the tracked accounts on a given day.
type HoldingReport struct {
	Date     date.Date
	Currency string
	Holdings []Holding
	Total    Money
}

func (r *HoldingReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("currency", r.Currency)
	w.Append("holdings", nonNil(r.Holdings))
	w.Append("total", r.Total)
	return w.MarshalJSON()
}

// ComputeHoldings values the tracked accounts at the end of 'on'.
// opts.Range and opts.Solver are ignored.
func ComputeHoldings(l *Ledger, opts Options, on date.Date) (*HoldingReport, error) {
	classifier, prices, tol, err := opts.setup(l)
	if err != nil {
		return nil, err
	}
	// only the tracked postings are needed.
	x, err := Extract(l, classifier, prices, date.Range{From: on, To: on}, tol)
	if err != nil {
		return nil, err
	}
	holdings, err := NewValuation(x.Postings, prices).Holdings(on)
	if err != nil {
		return nil, err
	}
	r := &HoldingReport{Date: on, Currency: opts.Currency, Holdings: holdings, Total: M(0, opts.Currency)}
	for _, h := range holdings {
		r.Total = r.Total.Add(h.Value)
	}
	opts.Logger.Debug().Stringer("date", on).Int("holdings", len(holdings)).Stringer("total", r.Total).Msg("holdings")
	return r, nil
}
