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

type returnsCmd struct {
	selection
	period

	json          bool
	query         string
	periods       bool
	debugInflows  bool
	debugOutflows bool
	debugInternal bool
	debugCashflow bool
}

func (*returnsCmd) Name() string { return "returns" }
func (*returnsCmd) Synopsis() string {
	return "compute the money-weighted and time-weighted returns of a portfolio"
}
func (*returnsCmd) Usage() string {
	return `ror returns [-p <portfolio>] [-a <regexp>]... [-i <regexp>]... [-s <start>] [-d <end>] [-year <year> | -ytd | -1year | -2year | -3year | -5year | -10year]

  Computes the money-weighted return (XIRR, annualized) and the time-weighted
  return (cumulative) of the tracked accounts over a date range.

  Money moving between a tracked account and an external account is a
  cashflow. Money coming from an internal account (a reinvested dividend) is
  part of the return.

Usage Examples:
# Returns of a brokerage account since its first posting.
$ ror returns -a '^Assets:US:Brokerage' -i ':Dividends$'

# Returns of the portfolio declared in ror.toml for the year 2024, as JSON.
$ ror returns -p brokerage -year 2024 -json

`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	c.selection.SetFlags(f)
	c.period.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the JSON report. Implies -json.")
	f.BoolVar(&c.periods, "periods", false, "Show the holding periods of the time-weighted return.")
	f.BoolVar(&c.debugInflows, "debug-inflows", false, "Print the external accounts that sourced money.")
	f.BoolVar(&c.debugOutflows, "debug-outflows", false, "Print the external accounts that received money.")
	f.BoolVar(&c.debugInternal, "debug-internal", false, "Print the internal accounts that moved money with the tracked accounts.")
	f.BoolVar(&c.debugCashflow, "debug-cashflows", false, "Print the cashflows used for the computation.")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := returns.Compute(ledger, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		if err := writeJSON(os.Stdout, report, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	md := renderer.RenderReport(report, renderer.ReportRenderOptions{
		SkipCashflows: !c.debugCashflow,
		SkipPeriods:   !c.periods,
	})
	md += renderer.DiagnosticsMarkdown(report.Diagnostics, renderer.DiagnosticsOptions{
		Inflows:  c.debugInflows,
		Outflows: c.debugOutflows,
		Internal: c.debugInternal,
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
