package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/returns"
	"github.com/etnz/returns/renderer"
	"github.com/google/subcommands"
)

type cashflowsCmd struct {
	selection
	period

	json  bool
	query string
}

func (*cashflowsCmd) Name() string     { return "cashflows" }
func (*cashflowsCmd) Synopsis() string { return "list the external cashflows of a portfolio" }
func (*cashflowsCmd) Usage() string {
	return `ror cashflows [-p <portfolio>] [-a <regexp>]... [-i <regexp>]... [-s <start>] [-d <end>] [-json]

  Lists the money that moved between the tracked accounts and the external
  accounts. A negative amount is money put into the tracked accounts.
`
}

func (c *cashflowsCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	c.period.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the cashflows as JSON.")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the JSON cashflows. Implies -json.")
}

func (c *cashflowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if opts.Range, err = c.Range(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := returns.ComputeCashflows(ledger, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing cashflows: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		if err := writeJSON(os.Stdout, report.Cashflows, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderCashflows(report))
	return subcommands.ExitSuccess
}
