package cmd

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const brokerageLedger = `
{"command":"price","date":"2015-12-01","commodity":"ABC","price":"1.00 USD"}
{"command":"tx","date":"2015-12-01","narration":"Buy 1,000 shares","postings":[{"account":"Assets:Brokerage","units":"1,000 ABC","cost":"1.00 USD"},{"account":"Assets:Cash","units":"-1,000 USD"}]}
{"command":"price","date":"2016-12-01","commodity":"ABC","price":"1.50 USD"}
{"command":"tx","date":"2016-12-01","narration":"Sell 1,000 shares","postings":[{"account":"Assets:Brokerage","units":"-1,000 ABC","cost":"1.00 USD"},{"account":"Assets:Cash","units":"1,500 USD"},{"account":"Income:CapitalGains","units":"-500 USD"}]}
`

func TestReturns_DebugInternal(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvCurrency, "USD")
	createTempLedger(t, brokerageLedger)

	testCases := []struct {
		args []string
		want bool
	}{
		{[]string{"-a", "^Assets:Brokerage", "-i", "^Income:"}, false},
		{[]string{"-a", "^Assets:Brokerage", "-i", "^Income:", "-debug-internal"}, true},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			c := &returnsCmd{}
			f := flag.NewFlagSet("returns", flag.ContinueOnError)
			c.SetFlags(f)
			if err := f.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			var status subcommands.ExitStatus
			out := captureStdout(t, func() { status = c.Execute(context.Background(), f) })
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want ExitSuccess", status)
			}
			if got := strings.Contains(out, "Income:CapitalGains"); got != tc.want {
				t.Errorf("output lists Income:CapitalGains = %v, want %v\n%s", got, tc.want, out)
			}
		})
	}
}
