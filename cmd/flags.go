package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/returns"
	"github.com/etnz/returns/date"
)

// patterns is a repeatable string flag.
type patterns []string

func (p *patterns) String() string { return strings.Join(*p, ",") }
func (p *patterns) Set(s string) error {
	*p = append(*p, s)
	return nil
}

// selection holds the flags selecting the tracked accounts.
type selection struct {
	portfolio string
	accounts  patterns
	internal  patterns
}

func (s *selection) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.portfolio, "p", "", "Name of a portfolio declared in the configuration file.")
	f.Var(&s.accounts, "a", "Regular expression of tracked accounts. Can be repeated.")
	f.Var(&s.internal, "i", "Regular expression of internal accounts (reinvested dividends, interest). Can be repeated.")
}

// options builds the computation options of the selected accounts.
func (s *selection) options(st *settings) (returns.Options, error) {
	var p Portfolio
	if s.portfolio != "" {
		var err error
		if p, err = st.Config.Portfolio(s.portfolio); err != nil {
			return returns.Options{}, err
		}
	}
	opts := returns.Options{
		Tracked:  append(append([]string(nil), p.Accounts...), s.accounts...),
		Internal: append(append([]string(nil), p.Internal...), s.internal...),
		Currency: firstOf(st.Currency, p.Currency, st.Config.Currency, defaultCurrency),
		Logger:   newLogger(st.Verbose),
	}
	if len(opts.Tracked) == 0 {
		return returns.Options{}, fmt.Errorf("no tracked account: use -p or -a")
	}
	return opts, nil
}

// trailing lists the horizons available as date shortcuts.
var trailing = []date.Horizon{date.OneYear, date.TwoYears, date.ThreeYears, date.FiveYears, date.TenYears}

// today is the end of the date shortcuts.
var today = date.Today

// period holds the flags selecting the range of a computation.
type period struct {
	start string
	end   string
	year  int
	ytd   bool
	years map[date.Horizon]*bool
}

func (p *period) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "Start date. Defaults to the first tracked posting.")
	f.StringVar(&p.end, "d", "", "End date. Defaults to the last date of the ledger.")
	f.IntVar(&p.year, "year", 0, "Calendar year. Shorthand for -s and -d.")
	f.BoolVar(&p.ytd, "ytd", false, "From the first day of the year until today.")
	p.years = make(map[date.Horizon]*bool)
	for _, h := range trailing {
		p.years[h] = f.Bool(h.String(), false, fmt.Sprintf("The %s ending today.", h))
	}
}

// Range returns the selected range. A zero bound is resolved by the computation.
func (p *period) Range() (date.Range, error) {
	var rng date.Range
	shortcuts := 0
	if p.year != 0 {
		shortcuts++
		rng = date.Year(p.year)
	}
	if p.ytd {
		shortcuts++
		rng = date.YearToDate.Range(today())
	}
	for _, h := range trailing {
		if *p.years[h] {
			shortcuts++
			rng = h.Range(today())
		}
	}
	if shortcuts > 1 {
		return rng, fmt.Errorf("at most one date shortcut can be used")
	}
	if shortcuts == 1 {
		if p.start != "" || p.end != "" {
			return rng, fmt.Errorf("date shortcuts are mutually exclusive with -s and -d")
		}
		return rng, nil
	}

	var err error
	if p.start != "" {
		if rng.From, err = date.Parse(p.start); err != nil {
			return rng, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if p.end != "" {
		if rng.To, err = date.Parse(p.end); err != nil {
			return rng, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return rng, nil
}
