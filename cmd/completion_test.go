package cmd

import (
	"flag"
	"testing"
)

func TestFlagPredictors(t *testing.T) {
	f := flag.NewFlagSet("returns", flag.ContinueOnError)
	(&returnsCmd{}).SetFlags(f)

	got := flagPredictors(f)
	for _, name := range []string{"p", "a", "i", "s", "d", "year", "ytd", "1year", "10year", "json", "q", "debug-cashflows"} {
		if _, exists := got[name]; !exists {
			t.Errorf("flagPredictors() has no prediction for -%s", name)
		}
	}
	if len(got) != countFlags(f) {
		t.Errorf("flagPredictors() has %d predictions, want %d", len(got), countFlags(f))
	}
}

func countFlags(f *flag.FlagSet) int {
	n := 0
	f.VisitAll(func(*flag.Flag) { n++ })
	return n
}
