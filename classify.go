package returns

import (
	"fmt"
	"regexp"
	"slices"
)

// Class is the role an account plays in a returns computation.
type Class int

const (
	// External accounts are outside the portfolio: money moving from or to them is a cashflow.
	External Class = iota
	// Tracked accounts hold the portfolio being measured.
	Tracked
	// Internal accounts feed the portfolio without being a cashflow (dividends, distributions).
	Internal
)

func (c Class) String() string {
	switch c {
	case Tracked:
		return "tracked"
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Classifier assigns a Class to account names.
//
// Patterns are regular expressions matched anywhere in the account name, use
// anchors to match a prefix ("^Assets:Brokerage").
type Classifier struct {
	tracked  []*regexp.Regexp
	internal []*regexp.Regexp
}

// NewClassifier compiles the tracked and internal pattern sets.
func NewClassifier(tracked, internal []string) (*Classifier, error) {
	if len(tracked) == 0 {
		return nil, &ConfigurationError{Reason: "no tracked account pattern"}
	}
	c := new(Classifier)
	var err error
	if c.tracked, err = compile(tracked); err != nil {
		return nil, err
	}
	if c.internal, err = compile(internal); err != nil {
		return nil, err
	}
	return c, nil
}

// compile compiles and deduplicates patterns, sorted so that results never depend on their order.
func compile(patterns []string) ([]*regexp.Regexp, error) {
	patterns = slices.Clone(patterns)
	slices.Sort(patterns)
	patterns = slices.Compact(patterns)
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			return nil, &ConfigurationError{Pattern: []string{p}, Reason: "empty pattern matches every account"}
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &ConfigurationError{Pattern: []string{p}, Reason: err.Error()}
		}
		res = append(res, re)
	}
	return res, nil
}

// matching returns the patterns that match account.
func matching(res []*regexp.Regexp, account string) []string {
	var m []string
	for _, re := range res {
		if re.MatchString(account) {
			m = append(m, re.String())
		}
	}
	return m
}

// Classify returns the class of an account.
//
// It fails with a *ConfigurationError if the account matches both a tracked
// and an internal pattern.
func (c *Classifier) Classify(account string) (Class, error) {
	t := matching(c.tracked, account)
	i := matching(c.internal, account)
	switch {
	case len(t) > 0 && len(i) > 0:
		return External, &ConfigurationError{
			Account: account,
			Pattern: append(t, i...),
			Reason:  "is both tracked and internal",
		}
	case len(t) > 0:
		return Tracked, nil
	case len(i) > 0:
		return Internal, nil
	default:
		return External, nil
	}
}
