package returns

import (
	"errors"

	"github.com/etnz/returns/date"
)

// HorizonReturn is the return over a trailing horizon.
type HorizonReturn struct {
	Horizon       date.Horizon
	Range         date.Range
	MoneyWeighted Rate
	TimeWeighted  Rate
	Available     bool // false when the horizon starts before the first tracked posting
}

func (h HorizonReturn) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("horizon", h.Horizon.String())
	w.Append("from", h.Range.From)
	w.Append("to", h.Range.To)
	w.Append("moneyWeighted", h.MoneyWeighted)
	w.Append("timeWeighted", h.TimeWeighted)
	return w.MarshalJSON()
}

// ComputeHorizons computes the returns over every trailing horizon ending on
// 'on'. opts.Range is ignored.
//
// A horizon that would start before the first tracked posting, that holds no
// tracked activity, or whose annualized rate is out of the solver range, is
// reported with undefined rates.
func ComputeHorizons(l *Ledger, opts Options, on date.Date) ([]HorizonReturn, error) {
	res := make([]HorizonReturn, 0, len(date.Horizons))
	for _, h := range date.Horizons {
		hr := HorizonReturn{Horizon: h, Range: h.Range(on)}
		opts.Range = hr.Range
		r, err := Compute(l, opts)
		var degenerate *DegenerateInputError
		var diverged *SolverDivergenceError
		switch {
		case errors.As(err, &degenerate), errors.As(err, &diverged):
			opts.Logger.Debug().Stringer("horizon", h).Err(err).Msg("horizon not available")
		case err != nil:
			return nil, err
		case r.Range.From != hr.Range.From:
			opts.Logger.Debug().Stringer("horizon", h).Stringer("inception", r.Inception).Msg("horizon starts before inception")
		default:
			hr.MoneyWeighted = r.MoneyWeighted
			hr.TimeWeighted = r.TimeWeighted
			hr.Available = true
		}
		res = append(res, hr)
	}
	return res, nil
}
