package returns

import (
	"errors"
	"fmt"

	"github.com/etnz/returns/date"
	"github.com/shopspring/decimal"
)

// ErrUndefined is returned by the solver when the flows cannot define a rate of
// return (no elapsed time, a single flow, or flows that never change sign).
var ErrUndefined = errors.New("rate of return is undefined")

// ConfigurationError reports an invalid classification policy.
type ConfigurationError struct {
	Account string   // offending account, if any
	Pattern []string // offending patterns, if any
	Reason  string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Account != "" && len(e.Pattern) > 0:
		return fmt.Sprintf("configuration error: account %q %s %q", e.Account, e.Reason, e.Pattern)
	case len(e.Pattern) > 0:
		return fmt.Sprintf("configuration error: pattern %q: %s", e.Pattern, e.Reason)
	default:
		return "configuration error: " + e.Reason
	}
}

// UnresolvableTransactionError reports a transaction whose legs are not consistent
// with the zero-sum invariant, so that its tracked leg cannot be attributed.
type UnresolvableTransactionError struct {
	Date      date.Date
	Narration string
	Currency  string
	Residual  decimal.Decimal
}

func (e *UnresolvableTransactionError) Error() string {
	return fmt.Sprintf("unresolvable transaction %s %q: postings do not balance, %s %s left over", e.Date, e.Narration, e.Residual, e.Currency)
}

// PriceUnavailableError reports a missing price for a commodity at a date.
type PriceUnavailableError struct {
	Commodity string
	Currency  string
	Date      date.Date
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("no price for %s in %s on or before %s", e.Commodity, e.Currency, e.Date)
}

// SolverDivergenceError reports that no root of the net present value could be
// bracketed in the solver search range.
type SolverDivergenceError struct {
	Low, High       float64
	NPVLow, NPVHigh float64
}

func (e *SolverDivergenceError) Error() string {
	return fmt.Sprintf("money-weighted return not found between %.2f%% and %.2f%% (NPV %.2f and %.2f have the same sign)", e.Low*100, e.High*100, e.NPVLow, e.NPVHigh)
}

// DegenerateInputError reports a request for which no return can be computed.
type DegenerateInputError struct {
	Range  date.Range
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("cannot compute returns over %s: %s", e.Range, e.Reason)
}
