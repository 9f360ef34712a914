package returns

import (
	"errors"
	"fmt"

	"github.com/etnz/returns/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultTolerance is the largest residual accepted when checking that a
// transaction balances.
var DefaultTolerance = decimal.New(5, -3)

// Options selects the tracked accounts and the period of a returns computation.
type Options struct {
	Tracked  []string // regular expressions of the tracked accounts
	Internal []string // regular expressions of the internal accounts

	Currency string     // reporting currency
	Range    date.Range // a zero From is the inception, a zero To the last ledger date

	Solver    SolverConfig    // zero fields use DefaultSolverConfig
	Tolerance decimal.Decimal // zero uses DefaultTolerance
	Logger    zerolog.Logger  // zero value logs nothing
}

// setup builds the classifier and the price index of a computation.
func (opts Options) setup(l *Ledger) (*Classifier, *PriceIndex, decimal.Decimal, error) {
	if opts.Currency == "" {
		return nil, nil, decimal.Decimal{}, &ConfigurationError{Reason: "no reporting currency"}
	}
	classifier, err := NewClassifier(opts.Tracked, opts.Internal)
	if err != nil {
		return nil, nil, decimal.Decimal{}, err
	}
	tol := opts.Tolerance
	if tol.IsZero() {
		tol = DefaultTolerance
	}
	return classifier, NewPriceIndex(opts.Currency, l.Prices()), tol, nil
}

// Report holds the money-weighted and time-weighted returns of the tracked accounts.
type Report struct {
	Currency      string
	Range         date.Range
	Inception     date.Date // date of the first tracked posting
	StartValue    Money     // value at the end of the day before Range.From
	EndValue      Money     // value at the end of Range.To
	MoneyWeighted Rate      // annualized, undefined when the flows cannot define a rate
	TimeWeighted  Rate      // cumulative over Range, undefined without any valued period
	Cashflows     []Cashflow
	Periods       []HoldingPeriod
	Diagnostics   Diagnostics
}

// NetFlow returns the net money put into the tracked accounts over the range.
func (r *Report) NetFlow() Money {
	net := M(0, r.Currency)
	for _, c := range r.Cashflows {
		net = net.Sub(c.Amount)
	}
	return net
}

// Gain returns the change in value not explained by cashflows.
func (r *Report) Gain() Money {
	return r.EndValue.Sub(r.StartValue).Sub(r.NetFlow())
}

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", r.Currency)
	w.Append("from", r.Range.From)
	w.Append("to", r.Range.To)
	w.Append("inception", r.Inception)
	w.Append("startValue", r.StartValue)
	w.Append("endValue", r.EndValue)
	w.Append("netFlow", r.NetFlow())
	w.Append("gain", r.Gain())
	w.Append("moneyWeighted", r.MoneyWeighted)
	w.Append("timeWeighted", r.TimeWeighted)
	w.Append("cashflows", nonNil(r.Cashflows))
	w.Append("periods", nonNil(r.Periods))
	w.Append("diagnostics", r.Diagnostics)
	return w.MarshalJSON()
}

// nonNil returns an empty slice instead of nil, so that it is encoded as [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Compute computes the money-weighted and time-weighted returns of the tracked
// accounts of l.
//
// The range starts with the value of the tracked accounts at the end of the
// day before opts.Range.From, and ends with their value at the end of
// opts.Range.To. A range starting before the first tracked posting starts on
// it.
func Compute(l *Ledger, opts Options) (*Report, error) {
	log := opts.Logger
	r, valuation, err := prepare(l, opts)
	if err != nil {
		return nil, err
	}
	rng := r.Range

	flows := make([]Flow, 0, len(r.Cashflows)+2)
	flows = append(flows, Flow{Date: rng.From, Amount: r.StartValue.Neg().Float64()})
	flows = append(flows, flowsOf(r.Cashflows)...)
	flows = append(flows, Flow{Date: rng.To, Amount: r.EndValue.Float64()})
	mwr, err := XIRR(flows, opts.Solver)
	switch {
	case errors.Is(err, ErrUndefined):
		log.Debug().Err(err).Msg("money-weighted return")
	case err != nil:
		return nil, err
	default:
		r.MoneyWeighted = RateFromFloat(mwr)
	}

	r.TimeWeighted, r.Periods, err = TimeWeighted(rng, r.Cashflows, valuation)
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("mwr", r.MoneyWeighted).Stringer("twr", r.TimeWeighted).Msg("returns")
	return r, nil
}

// ComputeCashflows returns the report of Compute without its rates: the range,
// the opening and closing values, and the external cashflows.
func ComputeCashflows(l *Ledger, opts Options) (*Report, error) {
	r, _, err := prepare(l, opts)
	return r, err
}

// prepare resolves the range of a computation, extracts its cashflows and
// values its boundaries.
func prepare(l *Ledger, opts Options) (*Report, *Valuation, error) {
	log := opts.Logger
	classifier, prices, tol, err := opts.setup(l)
	if err != nil {
		return nil, nil, err
	}

	rng := opts.Range
	if rng.To.IsZero() {
		rng.To = l.LastDate()
	}
	if !rng.From.IsZero() && !rng.From.Before(rng.To) {
		return nil, nil, &DegenerateInputError{Range: rng, Reason: "start date is not before end date"}
	}

	x, err := Extract(l, classifier, prices, rng, tol)
	if err != nil {
		return nil, nil, err
	}
	inception := x.FirstDate()
	if inception.IsZero() {
		return nil, nil, &DegenerateInputError{Range: rng, Reason: "no tracked posting"}
	}
	if rng.From.Before(inception) {
		log.Debug().Stringer("from", rng.From).Stringer("inception", inception).Msg("start date moved to the first tracked posting")
		rng.From = inception
	}
	if !rng.From.Before(rng.To) {
		return nil, nil, &DegenerateInputError{Range: rng, Reason: "start date is not before end date"}
	}

	valuation := NewValuation(x.Postings, prices)
	start, err := valuation.Value(rng.From.Add(-1))
	if err != nil {
		return nil, nil, fmt.Errorf("opening value: %w", err)
	}
	end, err := valuation.Value(rng.To)
	if err != nil {
		return nil, nil, fmt.Errorf("closing value: %w", err)
	}
	if start.IsZero() && !x.HasActivity(rng) {
		return nil, nil, &DegenerateInputError{Range: rng, Reason: "no tracked activity"}
	}
	log.Debug().Stringer("range", rng).Stringer("start", start).Stringer("end", end).Int("cashflows", len(x.Cashflows)).Msg("valuation")
	for _, c := range x.Cashflows {
		log.Debug().Stringer("date", c.Date).Stringer("amount", c.Amount).Str("narration", c.Narration).Msg("cashflow")
	}

	return &Report{
		Currency:    opts.Currency,
		Range:       rng,
		Inception:   inception,
		StartValue:  start,
		EndValue:    end,
		Cashflows:   x.Cashflows,
		Diagnostics: x.Diagnostics,
	}, valuation, nil
}
