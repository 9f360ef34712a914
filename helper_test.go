package returns

import (
	"strings"
	"testing"

	"github.com/etnz/returns/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// amount parses an amount like "1,000 ABC", and panics on error.
func amount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// post returns a posting of units to account.
func post(account, units string) Posting {
	return Posting{Account: account, Units: amount(units)}
}

// postAtCost returns a posting of units held at a per unit cost.
func postAtCost(account, units, cost string) Posting {
	c := amount(cost)
	return Posting{Account: account, Units: amount(units), Cost: &c}
}

// postAtPrice returns a posting of units annotated with a per unit price.
func postAtPrice(account, units, price string) Posting {
	p := amount(price)
	return Posting{Account: account, Units: amount(units), Price: &p}
}

func tx(on, narration string, postings ...Posting) Transaction {
	return Transaction{Date: date.MustParse(on), Narration: narration, Postings: postings}
}

func price(on, commodity, p string) PricePoint {
	return PricePoint{Date: date.MustParse(on), Commodity: commodity, Price: amount(p)}
}

// decode decodes a JSONL ledger, failing the test on error.
func decode(t *testing.T, jsonl string) *Ledger {
	t.Helper()
	l, err := DecodeLedger(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	return l
}

// brokerage is the illustrative ledger: 1,000 ABC bought at 1.00, 1,000 more
// at 2.00 a year later, all sold at 1.25 a year after that.
//
// The sale is recorded against its lots, with the loss booked in Income:CapitalGains.
const brokerage = `
{"command":"tx","date":"2015-12-01","narration":"Opening balance","postings":[{"account":"Assets:Cash","units":"3,000 USD"},{"account":"Equity:Opening-Balances","units":"-3,000 USD"}]}
{"command":"price","date":"2015-12-01","commodity":"ABC","price":"1.00 USD"}
{"command":"tx","date":"2015-12-01","narration":"Buy 1,000 shares","postings":[{"account":"Assets:Brokerage","units":"1,000 ABC","cost":"1.00 USD"},{"account":"Assets:Cash","units":"-1,000 USD"}]}
{"command":"price","date":"2016-12-01","commodity":"ABC","price":"2.00 USD"}
{"command":"tx","date":"2016-12-01","narration":"Buy 1,000 more shares","postings":[{"account":"Assets:Brokerage","units":"1,000 ABC","cost":"2.00 USD"},{"account":"Assets:Cash","units":"-2,000 USD"}]}
{"command":"price","date":"2017-12-01","commodity":"ABC","price":"1.50 USD"}
{"command":"tx","date":"2017-12-01","narration":"Sell 2,000 shares","postings":[{"account":"Assets:Brokerage","units":"-1,000 ABC","cost":"1.00 USD"},{"account":"Assets:Brokerage","units":"-1,000 ABC","cost":"2.00 USD"},{"account":"Assets:Cash","units":"2,500 USD"},{"account":"Income:CapitalGains","units":"500 USD"}]}
`

// brokerageAtPrice is the same ledger, with the sale recorded at its price.
// It needs no internal account.
const brokerageAtPrice = `
{"command":"price","date":"2015-12-01","commodity":"ABC","price":"1.00 USD"}
{"command":"tx","date":"2015-12-01","narration":"Buy 1,000 shares","postings":[{"account":"Assets:Brokerage","units":"1,000 ABC","cost":"1.00 USD"},{"account":"Assets:Cash","units":"-1,000 USD"}]}
{"command":"price","date":"2016-12-01","commodity":"ABC","price":"2.00 USD"}
{"command":"tx","date":"2016-12-01","narration":"Buy 1,000 more shares","postings":[{"account":"Assets:Brokerage","units":"1,000 ABC","cost":"2.00 USD"},{"account":"Assets:Cash","units":"-2,000 USD"}]}
{"command":"price","date":"2017-12-01","commodity":"ABC","price":"1.25 USD"}
{"command":"tx","date":"2017-12-01","narration":"Sell 2,000 shares","postings":[{"account":"Assets:Brokerage","units":"-2,000 ABC","price":"1.25 USD"},{"account":"Assets:Cash","units":"2,500 USD"}]}
`
