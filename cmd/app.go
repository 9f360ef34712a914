// Package cmd implements the ror command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/returns"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&returnsCmd{}, "returns")
	c.Register(&cashflowsCmd{}, "returns")
	c.Register(&holdingsCmd{}, "returns")
	c.Register(&horizonsCmd{}, "returns")

	c.Register(&fmtCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Empty values are resolved by loadSettings.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL format). Defaults to $"+EnvLedgerFile+" or "+defaultLedgerFile)
var configFile = flag.String("config", "", "Path to the portfolios configuration file (TOML format). Defaults to $"+EnvConfigFile+" or "+defaultConfigFile)
var currency = flag.String("currency", "", "Reporting currency. Defaults to $"+EnvCurrency+", then the configuration file, then "+defaultCurrency)
var verbose = flag.Bool("v", false, "Log the computation steps to stderr. Defaults to $"+EnvVerbose)

// DecodeLedger reads the ledger file.
func DecodeLedger(s *settings) (*returns.Ledger, error) {
	f, err := os.Open(s.LedgerFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := returns.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.LedgerFile, err)
	}
	return l, nil
}

// EncodeLedger writes the ledger file in its canonical form.
func EncodeLedger(s *settings, l *returns.Ledger) error {
	f, err := os.Create(s.LedgerFile)
	if err != nil {
		return err
	}
	if err := returns.EncodeLedger(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printMarkdown renders markdown to stdout, styled for the terminal when stdout is one.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
