package returns

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/returns/date"
)

func extract(t *testing.T, l *Ledger, tracked, internal []string, rng date.Range) (*Extraction, error) {
	t.Helper()
	c, err := NewClassifier(tracked, internal)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	return Extract(l, c, NewPriceIndex("USD", l.Prices()), rng, DefaultTolerance)
}

func TestExtract_Brokerage(t *testing.T) {
	l := decode(t, brokerage)
	x, err := extract(t, l, []string{"Assets:Brokerage"}, []string{"Income:CapitalGains"}, date.NewRange(date.New(2015, 12, 1), date.New(2017, 12, 1)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []Cashflow{
		{Date: date.New(2015, 12, 1), Amount: USD(-1000), Inflows: []string{"Assets:Cash"}},
		{Date: date.New(2016, 12, 1), Amount: USD(-2000), Inflows: []string{"Assets:Cash"}},
		{Date: date.New(2017, 12, 1), Amount: USD(2500), Outflows: []string{"Assets:Cash"}},
	}
	if len(x.Cashflows) != len(want) {
		t.Fatalf("Extract() got %d cashflows, want %d: %v", len(x.Cashflows), len(want), x.Cashflows)
	}
	for i, got := range x.Cashflows {
		w := want[i]
		if got.Date != w.Date || !got.Amount.Equal(w.Amount) || !slices.Equal(got.Inflows, w.Inflows) || !slices.Equal(got.Outflows, w.Outflows) {
			t.Errorf("cashflow %d = %v %v in:%v out:%v, want %v %v in:%v out:%v", i,
				got.Date, got.Amount, got.Inflows, got.Outflows,
				w.Date, w.Amount, w.Inflows, w.Outflows)
		}
	}

	if got, want := len(x.Postings), 4; got != want {
		t.Errorf("Extract() got %d tracked postings, want %d", got, want)
	}
	if got, want := x.Diagnostics.External(), []string{"Assets:Cash"}; !slices.Equal(got, want) {
		t.Errorf("Diagnostics.External() = %v, want %v", got, want)
	}
	if got, want := x.Diagnostics.Internal, []string{"Income:CapitalGains"}; !slices.Equal(got, want) {
		t.Errorf("Diagnostics.Internal = %v, want %v", got, want)
	}
}

func TestExtract_CapitalGainsAsExternal(t *testing.T) {
	// Without internal accounts the capital loss is money taken out too.
	l := decode(t, brokerage)
	x, err := extract(t, l, []string{"Assets:Brokerage"}, nil, date.NewRange(date.New(2015, 12, 1), date.New(2017, 12, 1)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	last := x.Cashflows[len(x.Cashflows)-1]
	if want := USD(3000); !last.Amount.Equal(want) {
		t.Errorf("sale cashflow = %v, want %v", last.Amount, want)
	}
	if want := []string{"Assets:Cash", "Income:CapitalGains"}; !slices.Equal(last.Outflows, want) {
		t.Errorf("sale outflows = %v, want %v", last.Outflows, want)
	}
}

func TestExtract_ReinvestedDividend(t *testing.T) {
	l := NewLedger()
	l.AppendPrices(price("2025-01-01", "ABC", "10 USD"))
	l.Append(
		tx("2025-01-01", "Deposit", post("Assets:Brokerage:Cash", "1,000 USD"), post("Assets:Checking", "-1,000 USD")),
		tx("2025-01-02", "Buy", postAtCost("Assets:Brokerage:ABC", "100 ABC", "10 USD"), post("Assets:Brokerage:Cash", "-1,000 USD")),
		tx("2025-03-01", "Dividend reinvested", postAtCost("Assets:Brokerage:ABC", "2 ABC", "10 USD"), post("Income:Brokerage:Dividends", "-20 USD")),
		tx("2025-03-02", "Interest", post("Assets:Checking", "1 USD"), post("Income:Bank:Interest", "-1 USD")),
	)

	for _, internal := range [][]string{{"Dividends"}, {"^Income:"}, {"Income:Brokerage:Dividends", "Interest"}} {
		x, err := extract(t, l, []string{"^Assets:Brokerage"}, internal, date.NewRange(date.New(2025, 1, 1), date.New(2025, 12, 31)))
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if len(x.Cashflows) != 1 || x.Cashflows[0].Narration != "Deposit" {
			t.Errorf("Extract(internal=%v) cashflows = %v, want the deposit only", internal, x.Cashflows)
		}
		if got, want := len(x.Postings), 4; got != want {
			t.Errorf("Extract(internal=%v) got %d tracked postings, want %d", internal, got, want)
		}
	}
}

func TestExtract_Range(t *testing.T) {
	l := decode(t, brokerage)
	x, err := extract(t, l, []string{"Assets:Brokerage"}, []string{"Income:CapitalGains"}, date.NewRange(date.New(2016, 1, 1), date.New(2016, 12, 31)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(x.Cashflows) != 1 || x.Cashflows[0].Date != date.New(2016, 12, 1) {
		t.Errorf("Extract() cashflows = %v, want the 2016 buy only", x.Cashflows)
	}
	// postings before the range are kept for the valuation, not after.
	if got, want := len(x.Postings), 2; got != want {
		t.Errorf("Extract() got %d tracked postings, want %d", got, want)
	}
	if got, want := x.FirstDate(), date.New(2015, 12, 1); got != want {
		t.Errorf("FirstDate() = %v, want %v", got, want)
	}
}

func TestExtract_Unresolvable(t *testing.T) {
	l := NewLedger()
	l.Append(tx("2025-01-01", "Typo", post("Assets:Brokerage", "1,000 USD"), post("Assets:Checking", "-100 USD")))

	_, err := extract(t, l, []string{"Brokerage"}, nil, date.NewRange(date.New(2025, 1, 1), date.New(2025, 12, 31)))
	var ue *UnresolvableTransactionError
	if !errors.As(err, &ue) {
		t.Fatalf("Extract() error = %v, want *UnresolvableTransactionError", err)
	}
	if ue.Narration != "Typo" || ue.Currency != "USD" || ue.Residual.String() != "900" {
		t.Errorf("UnresolvableTransactionError = %+v, want Typo with 900 USD left over", ue)
	}
}

func TestExtract_Tolerance(t *testing.T) {
	l := NewLedger()
	l.Append(
		tx("2025-01-01", "Rounded", post("Assets:Brokerage", "10.004 USD"), post("Assets:Checking", "-10 USD")),
		tx("2025-01-02", "Dust", post("Assets:Brokerage", "0.001 USD"), post("Assets:Checking", "-0.001 USD")),
	)
	x, err := extract(t, l, []string{"Brokerage"}, nil, date.NewRange(date.New(2025, 1, 1), date.New(2025, 12, 31)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	// The dust rounds to zero and is no cashflow.
	if len(x.Cashflows) != 1 || !x.Cashflows[0].Amount.Equal(USD(-10)) {
		t.Errorf("Extract() cashflows = %v, want a single -10 USD", x.Cashflows)
	}
}

func TestExtract_ClassificationConflict(t *testing.T) {
	l := decode(t, brokerage)
	_, err := extract(t, l, []string{"Assets"}, []string{"Cash"}, date.NewRange(date.New(2015, 1, 1), date.New(2017, 12, 31)))
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("Extract() error = %v, want *ConfigurationError", err)
	}
	if ce.Account != "Assets:Cash" {
		t.Errorf("ConfigurationError.Account = %q, want Assets:Cash", ce.Account)
	}
}
