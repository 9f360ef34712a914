package returns

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/returns/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CommandType discriminates the directives of a JSONL ledger.
type CommandType string

const (
	CmdTx    CommandType = "tx"
	CmdPrice CommandType = "price"
)

// jposting is the json form of a Posting.
type jposting struct {
	Account string  `json:"account"`
	Units   Amount  `json:"units"`
	Cost    *Amount `json:"cost,omitempty"`
	Price   *Amount `json:"price,omitempty"`
}

// jtx is the json form of a Transaction.
type jtx struct {
	Date      date.Date  `json:"date"`
	Narration string     `json:"narration,omitempty"`
	Postings  []jposting `json:"postings"`
}

// jprice is the json form of a PricePoint.
type jprice struct {
	Date      date.Date `json:"date"`
	Commodity string    `json:"commodity"`
	Price     Amount    `json:"price"`
}

// DecodeLedger decodes a stream of JSONL directives from an io.Reader and
// returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	var txs []Transaction
	var prices []PricePoint

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}

		switch identifier.Command {
		case CmdTx:
			var j jtx
			if err := json.Unmarshal(line, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid transaction: %w", lineno, err)
			}
			if j.Date.IsZero() {
				return nil, fmt.Errorf("line %d: transaction without date", lineno)
			}
			tx := Transaction{Date: j.Date, Narration: j.Narration}
			for _, p := range j.Postings {
				if p.Account == "" {
					return nil, fmt.Errorf("line %d: posting without account", lineno)
				}
				tx.Postings = append(tx.Postings, Posting{Account: p.Account, Units: p.Units, Cost: p.Cost, Price: p.Price})
			}
			txs = append(txs, tx)
		case CmdPrice:
			var j jprice
			if err := json.Unmarshal(line, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid price: %w", lineno, err)
			}
			if j.Date.IsZero() || j.Commodity == "" {
				return nil, fmt.Errorf("line %d: price requires a date and a commodity", lineno)
			}
			prices = append(prices, PricePoint{Date: j.Date, Commodity: j.Commodity, Price: j.Price})
		default:
			return nil, fmt.Errorf("line %d: unknown command: %q", lineno, identifier.Command)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.Append(txs...)
	ledger.AppendPrices(prices...)
	return ledger, nil
}

func (p Posting) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("account", p.Account)
	w.Append("units", p.Units)
	w.Optional("cost", p.Cost)
	w.Optional("price", p.Price)
	return w.MarshalJSON()
}

func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdTx)
	w.Append("date", tx.Date)
	w.Optional("narration", tx.Narration)
	w.Append("postings", tx.Postings)
	return w.MarshalJSON()
}

func (pp PricePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdPrice)
	w.Append("date", pp.Date)
	w.Append("commodity", pp.Commodity)
	w.Append("price", pp.Price)
	return w.MarshalJSON()
}

// encodeLine marshals a single directive to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal directive: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write directive: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format.
//
// Directives are in chronological order, on a given day price points come
// first, and transactions keep their relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	txs, prices := ledger.Transactions(), ledger.Prices()
	i, j := 0, 0
	for i < len(txs) || j < len(prices) {
		if j < len(prices) && (i == len(txs) || !prices[j].Date.After(txs[i].Date)) {
			if err := encodeLine(w, prices[j]); err != nil {
				return err
			}
			j++
			continue
		}
		if err := encodeLine(w, txs[i]); err != nil {
			return err
		}
		i++
	}
	return nil
}
