package returns

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{USD(1234.5), "$1,234.50"},
		{USD(-1000), "-$1,000.00"},
		{USD(0.004), "$0.00"},
		{M(1234.5, "JPY"), "¥1,235"},
		{M(12.345, "ABC"), "12.35 ABC"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestMoney_Round(t *testing.T) {
	if got := USD(0.004).Round(); !got.IsZero() {
		t.Errorf("USD(0.004).Round() = %v, want 0", got)
	}
	if got, want := USD(-10.005).Round(), USD(-10.01); !got.Equal(want) {
		t.Errorf("USD(-10.005).Round() = %v, want %v", got, want)
	}
	if got, want := M(10.5, "JPY").Round(), M(11, "JPY"); !got.Equal(want) {
		t.Errorf("JPY(10.5).Round() = %v, want %v", got, want)
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("USD + EUR did not panic")
		}
	}()
	USD(1).Add(EUR(1))
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(USD(1234.567))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(data), `{"currency":"USD","amount":1234.57}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestRate(t *testing.T) {
	testCases := []struct {
		r         Rate
		str, sign string
		json      string
	}{
		{Rate{}, "n/a", "n/a", "null"},
		{NewRate(decimal.RequireFromString("0.1234")), "12.34%", "+12.34%", "0.1234"},
		{NewRate(decimal.RequireFromString("-0.129094558")), "-12.91%", "-12.91%", "-0.12909456"},
		{NewRate(decimal.Zero), "0.00%", "-", "0"},
	}
	for _, tc := range testCases {
		if got := tc.r.String(); got != tc.str {
			t.Errorf("String() = %q, want %q", got, tc.str)
		}
		if got := tc.r.SignedString(); got != tc.sign {
			t.Errorf("SignedString() = %q, want %q", got, tc.sign)
		}
		data, err := json.Marshal(tc.r)
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		if string(data) != tc.json {
			t.Errorf("json.Marshal(%v) = %s, want %s", tc.r, data, tc.json)
		}
	}
}
