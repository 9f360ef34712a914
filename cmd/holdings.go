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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	selection

	date  string
	json  bool
	query string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings of a portfolio on a specific date" }
func (*holdingsCmd) Usage() string {
	return `ror holdings [-p <portfolio>] [-a <regexp>]... [-d <date>] [-json]

  Displays the commodities held in the tracked accounts at the end of a given
  date, valued in the reporting currency.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date for the holdings report. Defaults to the last date of the ledger. See the user manual for supported date formats.")
	f.BoolVar(&c.json, "json", false, "Print the holdings as JSON.")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the JSON holdings. Implies -json.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := returns.ComputeHoldings(ledger, opts, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating holdings report: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		if err := writeJSON(os.Stdout, report, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderHoldings(report))
	return subcommands.ExitSuccess
}
