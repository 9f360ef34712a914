package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/returns"
	"github.com/etnz/returns/date"
	"github.com/etnz/returns/renderer"
	"github.com/google/subcommands"
)

type horizonsCmd struct {
	selection

	date  string
	json  bool
	query string
}

func (*horizonsCmd) Name() string { return "horizons" }
func (*horizonsCmd) Synopsis() string {
	return "compute the returns over trailing horizons, from one month to ten years"
}
func (*horizonsCmd) Usage() string {
	return `ror horizons [-p <portfolio>] [-a <regexp>]... [-i <regexp>]... [-d <date>] [-json]

  Computes the money-weighted and time-weighted returns over the trailing
  horizons ending on a date: 1 month, 3 months, 6 months, year to date, and 1,
  2, 3, 5 and 10 years. A horizon starting before the first tracked posting is
  not available.
`
}

func (c *horizonsCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.date, "d", "", "End date of the horizons. Defaults to the last date of the ledger.")
	f.BoolVar(&c.json, "json", false, "Print the returns as JSON.")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the JSON returns. Implies -json.")
}

func (c *horizonsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	opts, err := c.options(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	on := ledger.LastDate()
	if c.date != "" {
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	horizons, err := returns.ComputeHorizons(ledger, opts, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		if err := writeJSON(os.Stdout, horizons, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderHorizons(on, opts.Currency, horizons))
	return subcommands.ExitSuccess
}
