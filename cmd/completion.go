package cmd

import (
	"flag"
	"slices"

	"github.com/etnz/returns/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request for the commands registered in
// c and exits. It returns when the COMP_LINE environment variable is not set.
//
// Running it with COMP_INSTALL=1 installs the completion in the user's shell.
func Complete(c *subcommands.Commander, name string) {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(f)}
	})
	if topic, exists := root.Sub["topic"]; exists {
		topic.Args = complete.PredictFunc(predictTopics)
	}
	root.Complete(name)
}

// flagPredictors returns the predictions of every flag of f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "ledger-file":
			flags[fl.Name] = predict.Files("*.jsonl")
		case "config":
			flags[fl.Name] = predict.Files("*.toml")
		case "p":
			flags[fl.Name] = complete.PredictFunc(predictPortfolios)
		case "a", "i":
			flags[fl.Name] = complete.PredictFunc(predictAccounts)
		default:
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				flags[fl.Name] = predict.Nothing
			} else {
				flags[fl.Name] = predict.Something
			}
		}
	})
	return flags
}

// predictAccounts lists the accounts of the ledger, as prefix patterns.
func predictAccounts(prefix string) []string {
	s, err := loadSettings()
	if err != nil {
		return nil
	}
	l, err := DecodeLedger(s)
	if err != nil {
		return nil
	}
	var patterns []string
	for _, account := range l.Accounts() {
		patterns = append(patterns, "^"+account)
	}
	return patterns
}

func predictTopics(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
}

// predictPortfolios lists the portfolios of the configuration file.
func predictPortfolios(prefix string) []string {
	s, err := loadSettings()
	if err != nil {
		return nil
	}
	var names []string
	for name := range s.Config.Portfolios {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
