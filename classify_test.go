package returns

import (
	"errors"
	"slices"
	"testing"
)

func TestClassifier_Classify(t *testing.T) {
	c, err := NewClassifier(
		[]string{"^Assets:US:Brokerage", "Retirement"},
		[]string{"^Income:.*:Dividends$", "CapitalGains"},
	)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}

	testCases := []struct {
		account string
		want    Class
	}{
		{"Assets:US:Brokerage", Tracked},
		{"Assets:US:Brokerage:ABC", Tracked},
		{"Assets:US:Retirement:401k", Tracked}, // match anywhere
		{"Assets:US:Cash", External},
		{"Income:US:Dividends", Internal},
		{"Income:US:Dividends:Extra", External}, // anchored at the end
		{"Income:CapitalGains", Internal},
		{"Equity:Opening-Balances", External},
		{"", External},
	}
	for _, tc := range testCases {
		t.Run(tc.account, func(t *testing.T) {
			got, err := c.Classify(tc.account)
			if err != nil {
				t.Fatalf("Classify(%q) error = %v", tc.account, err)
			}
			if got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.account, got, tc.want)
			}
			// idempotent
			if again, _ := c.Classify(tc.account); again != got {
				t.Errorf("Classify(%q) second call = %v, want %v", tc.account, again, got)
			}
		})
	}
}

func TestClassifier_OrderIndependent(t *testing.T) {
	tracked := []string{"^Assets:Brokerage", "^Assets:IRA", "Savings$"}
	internal := []string{"Dividends", "^Income:.*:Interest"}
	accounts := []string{"Assets:Brokerage", "Assets:IRA:Fund", "Assets:Savings", "Income:Dividends", "Income:Bank:Interest", "Assets:Checking"}

	a, err := NewClassifier(tracked, internal)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	reversed := func(s []string) []string { s = slices.Clone(s); slices.Reverse(s); return s }
	b, err := NewClassifier(reversed(tracked), append(reversed(internal), internal[0]))
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	for _, account := range accounts {
		ca, _ := a.Classify(account)
		cb, _ := b.Classify(account)
		if ca != cb {
			t.Errorf("Classify(%q) = %v and %v depending on pattern order", account, ca, cb)
		}
	}
}

func TestClassifier_Conflict(t *testing.T) {
	c, err := NewClassifier([]string{"^Assets:"}, []string{"Dividends"})
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	_, err = c.Classify("Assets:Dividends")
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("Classify() error = %v, want *ConfigurationError", err)
	}
	if ce.Account != "Assets:Dividends" {
		t.Errorf("ConfigurationError.Account = %q, want %q", ce.Account, "Assets:Dividends")
	}
	if want := []string{"^Assets:", "Dividends"}; !slices.Equal(ce.Pattern, want) {
		t.Errorf("ConfigurationError.Pattern = %q, want %q", ce.Pattern, want)
	}
}

func TestNewClassifier_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		tracked  []string
		internal []string
	}{
		{"no tracked pattern", nil, []string{"Income"}},
		{"invalid tracked pattern", []string{"Assets:("}, nil},
		{"invalid internal pattern", []string{"Assets"}, []string{"[Income"}},
		{"empty pattern", []string{""}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClassifier(tc.tracked, tc.internal)
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Errorf("NewClassifier() error = %v, want *ConfigurationError", err)
			}
		})
	}
}
