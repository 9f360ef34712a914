package returns

import (
	"testing"

	"github.com/etnz/returns/date"
)

func TestComputeHorizons(t *testing.T) {
	l := decode(t, brokerage)
	got, err := ComputeHorizons(l, Options{
		Tracked:  []string{"^Assets:Brokerage"},
		Internal: []string{"Income:CapitalGains"},
		Currency: "USD",
	}, date.New(2017, 11, 30))
	if err != nil {
		t.Fatalf("ComputeHorizons() error = %v", err)
	}
	if len(got) != len(date.Horizons) {
		t.Fatalf("ComputeHorizons() got %d horizons, want %d", len(got), len(date.Horizons))
	}

	available := map[date.Horizon]bool{
		date.OneMonth:    true,
		date.ThreeMonths: true,
		date.SixMonths:   true,
		date.YearToDate:  true,
		date.OneYear:     true,
	}
	for _, h := range got {
		if h.Available != available[h.Horizon] {
			t.Errorf("%v Available = %v, want %v", h.Horizon, h.Available, available[h.Horizon])
		}
		if !h.Available && (h.MoneyWeighted.Defined() || h.TimeWeighted.Defined()) {
			t.Errorf("%v rates = %v %v, want n/a", h.Horizon, h.MoneyWeighted, h.TimeWeighted)
		}
	}

	if got, want := got[0].TimeWeighted.String(), "0.00%"; got != want {
		t.Errorf("1month TimeWeighted = %q, want %q", got, want)
	}
	if got, want := got[4].TimeWeighted.String(), "100.00%"; got != want {
		t.Errorf("1year TimeWeighted = %q, want %q", got, want)
	}
	if !got[4].MoneyWeighted.Defined() || got[4].MoneyWeighted.Float64() <= 0 {
		t.Errorf("1year MoneyWeighted = %v, want a gain", got[4].MoneyWeighted)
	}
}
