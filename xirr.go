package returns

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/returns/date"
	"gonum.org/v1/gonum/floats"
)

// Flow is a dated amount of the money-weighted flow series.
//
// Negative amounts are money invested, positive amounts money received.
type Flow struct {
	Date   date.Date
	Amount float64
}

// SolverConfig bounds the search of the money-weighted rate.
//
// Rates are annualized ratios: -0.99 is -99%, 100 is +10,000%.
type SolverConfig struct {
	Low, High     float64 // search bracket
	Guess         float64 // Newton starting point, inside the bracket
	Tolerance     float64 // absolute tolerance on the rate
	MaxIterations int
}

// DefaultSolverConfig is used for the zero fields of a SolverConfig.
var DefaultSolverConfig = SolverConfig{
	Low:           -0.99,
	High:          100,
	Guess:         0.1,
	Tolerance:     1e-9,
	MaxIterations: 200,
}

func (cfg SolverConfig) orDefault() SolverConfig {
	if cfg == (SolverConfig{}) {
		return DefaultSolverConfig
	}
	if cfg.Low == 0 && cfg.High == 0 {
		cfg.Low, cfg.High = DefaultSolverConfig.Low, DefaultSolverConfig.High
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultSolverConfig.Tolerance
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultSolverConfig.MaxIterations
	}
	return cfg
}

func (cfg SolverConfig) validate() error {
	switch {
	case cfg.Low <= -1:
		return &ConfigurationError{Reason: fmt.Sprintf("solver lower bound %g must be above -1", cfg.Low)}
	case cfg.High <= cfg.Low:
		return &ConfigurationError{Reason: fmt.Sprintf("solver bracket [%g, %g] is empty", cfg.Low, cfg.High)}
	case cfg.Tolerance <= 0:
		return &ConfigurationError{Reason: fmt.Sprintf("solver tolerance %g must be positive", cfg.Tolerance)}
	case cfg.MaxIterations <= 0:
		return &ConfigurationError{Reason: "solver needs at least one iteration"}
	}
	return nil
}

// series is a flow series ready for discounting.
type series struct {
	amounts []float64
	years   []float64 // year fraction since the first flow
	scratch []float64
}

func newSeries(flows []Flow) series {
	s := series{
		amounts: make([]float64, len(flows)),
		years:   make([]float64, len(flows)),
		scratch: make([]float64, len(flows)),
	}
	for i, f := range flows {
		s.amounts[i] = f.Amount
		s.years[i] = float64(date.Range{From: flows[0].Date, To: f.Date}.Days()) / 365
	}
	return s
}

// npv returns Σ a_i (1+r)^-t_i.
func (s series) npv(r float64) float64 {
	for i, t := range s.years {
		s.scratch[i] = math.Pow(1+r, -t)
	}
	return floats.Dot(s.amounts, s.scratch)
}

// dnpv returns the derivative of npv: Σ -t_i a_i (1+r)^(-t_i-1).
func (s series) dnpv(r float64) float64 {
	for i, t := range s.years {
		s.scratch[i] = -t * math.Pow(1+r, -t-1)
	}
	return floats.Dot(s.amounts, s.scratch)
}

// normalize returns the nonzero flows sorted by date, or ErrUndefined if they
// cannot define a rate.
func normalize(flows []Flow) ([]Flow, error) {
	flows = slices.DeleteFunc(slices.Clone(flows), func(f Flow) bool { return f.Amount == 0 })
	slices.SortStableFunc(flows, func(a, b Flow) int { return a.Date.Compare(b.Date) })
	if len(flows) < 2 {
		return nil, ErrUndefined
	}
	if flows[0].Date == flows[len(flows)-1].Date {
		return nil, ErrUndefined
	}
	neg := slices.ContainsFunc(flows, func(f Flow) bool { return f.Amount < 0 })
	pos := slices.ContainsFunc(flows, func(f Flow) bool { return f.Amount > 0 })
	if !neg || !pos {
		return nil, ErrUndefined
	}
	return flows, nil
}

// NPV returns the net present value of flows at the annual rate r, discounted
// to the date of the earliest flow.
func NPV(flows []Flow, r float64) float64 {
	if len(flows) == 0 {
		return 0
	}
	flows = slices.Clone(flows)
	slices.SortStableFunc(flows, func(a, b Flow) int { return a.Date.Compare(b.Date) })
	return newSeries(flows).npv(r)
}

// XIRR returns the annualized rate r that zeroes the net present value of flows.
//
// The root is searched within [cfg.Low, cfg.High] with Newton steps, falling
// back to bisection whenever a step leaves the current bracket. It returns
// ErrUndefined for flows that cannot define a rate, and a
// *SolverDivergenceError if the bracket does not contain a sign change.
func XIRR(flows []Flow, cfg SolverConfig) (float64, error) {
	cfg = cfg.orDefault()
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	flows, err := normalize(flows)
	if err != nil {
		return 0, err
	}
	s := newSeries(flows)

	lo, hi := cfg.Low, cfg.High
	flo, fhi := s.npv(lo), s.npv(hi)
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case math.Signbit(flo) == math.Signbit(fhi):
		return 0, &SolverDivergenceError{Low: lo, High: hi, NPVLow: flo, NPVHigh: fhi}
	}

	x := cfg.Guess
	if x <= lo || x >= hi {
		x = lo + (hi-lo)/2
	}
	for range cfg.MaxIterations {
		f := s.npv(x)
		if f == 0 {
			return x, nil
		}
		// shrink the bracket around the root
		if math.Signbit(f) == math.Signbit(flo) {
			lo, flo = x, f
		} else {
			hi = x
		}

		next := lo + (hi-lo)/2
		if df := s.dnpv(x); df != 0 {
			if n := x - f/df; n > lo && n < hi {
				next = n
			}
		}
		if math.Abs(next-x) < cfg.Tolerance {
			return next, nil
		}
		x = next
	}
	if hi-lo < cfg.Tolerance {
		return x, nil
	}
	return 0, fmt.Errorf("money-weighted return did not converge in %d iterations, last bracket [%g, %g]", cfg.MaxIterations, lo, hi)
}

// flowsOf converts cashflows into a flow series, seen from the investor: money
// put into the tracked accounts is a negative flow.
func flowsOf(cashflows []Cashflow) []Flow {
	flows := make([]Flow, 0, len(cashflows))
	for _, c := range cashflows {
		flows = append(flows, Flow{Date: c.Date, Amount: c.Amount.Float64()})
	}
	return flows
}
