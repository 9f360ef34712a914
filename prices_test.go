package returns

import (
	"errors"
	"testing"

	"github.com/etnz/returns/date"
)

func TestPriceIndex_Price(t *testing.T) {
	p := NewPriceIndex("USD", []PricePoint{
		price("2025-01-10", "ABC", "1.00 USD"),
		price("2025-01-20", "ABC", "2.00 USD"),
		price("2025-01-10", "USD", "0.80 EUR"), // inverse pair
		price("2025-01-10", "FND", "10 EUR"),  // priced through EUR
		price("2025-01-15", "XYZ", "3 GBP"),   // no path to USD
	})

	testCases := []struct {
		name      string
		commodity string
		on        string
		want      string
		wantErr   bool
	}{
		{name: "reporting currency", commodity: "USD", on: "2000-01-01", want: "1"},
		{name: "before first price", commodity: "ABC", on: "2025-01-09", wantErr: true},
		{name: "on price day", commodity: "ABC", on: "2025-01-10", want: "1"},
		{name: "between prices", commodity: "ABC", on: "2025-01-19", want: "1"},
		{name: "latest price", commodity: "ABC", on: "2026-01-01", want: "2"},
		{name: "inverse pair", commodity: "EUR", on: "2025-01-10", want: "1.25"},
		{name: "through quote currency", commodity: "FND", on: "2025-01-10", want: "12.5"},
		{name: "no path", commodity: "XYZ", on: "2025-01-20", wantErr: true},
		{name: "unknown", commodity: "NOPE", on: "2025-01-20", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Price(tc.commodity, date.MustParse(tc.on))
			if tc.wantErr {
				var pe *PriceUnavailableError
				if !errors.As(err, &pe) {
					t.Fatalf("Price(%q, %s) error = %v, want *PriceUnavailableError", tc.commodity, tc.on, err)
				}
				if pe.Commodity != tc.commodity || pe.Currency != "USD" {
					t.Errorf("PriceUnavailableError = %+v, want commodity %q in USD", pe, tc.commodity)
				}
				return
			}
			if err != nil {
				t.Fatalf("Price(%q, %s) error = %v", tc.commodity, tc.on, err)
			}
			if got.String() != tc.want {
				t.Errorf("Price(%q, %s) = %v, want %v", tc.commodity, tc.on, got, tc.want)
			}
		})
	}
}

func TestPriceIndex_Convert(t *testing.T) {
	p := NewPriceIndex("EUR", []PricePoint{price("2025-01-10", "USD", "0.5 EUR")})

	got, err := p.Convert(amount("-100 USD"), date.New(2025, 1, 10))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if want := EUR(-50); !got.Equal(want) {
		t.Errorf("Convert(-100 USD) = %v, want %v", got, want)
	}

	// zero amounts need no price.
	got, err = p.Convert(amount("0 GBP"), date.New(2025, 1, 10))
	if err != nil || !got.IsZero() {
		t.Errorf("Convert(0 GBP) = %v, %v want 0, nil", got, err)
	}
}
