package returns

import (
	"cmp"
	"slices"

	"github.com/etnz/returns/date"
)

// Posting is one leg of a transaction.
type Posting struct {
	Account string
	Units   Amount
	Cost    *Amount // per unit cost basis, optional
	Price   *Amount // per unit price annotation, optional
}

// Weight returns the amount the posting contributes to the balance of its
// transaction: units times cost, or units times price, or units.
func (p Posting) Weight() Amount {
	switch {
	case p.Cost != nil:
		return p.Cost.Mul(p.Units.Number)
	case p.Price != nil:
		return p.Price.Mul(p.Units.Number)
	default:
		return p.Units
	}
}

// Transaction is a dated and balanced list of postings.
type Transaction struct {
	Date      date.Date
	Narration string
	Postings  []Posting
}

// PricePoint is the price of one unit of Commodity, on Date.
type PricePoint struct {
	Date      date.Date
	Commodity string
	Price     Amount
}

// DatedPosting is a posting along with the date of its transaction.
type DatedPosting struct {
	Date date.Date
	Posting
}

// Ledger holds transactions and price points.
//
// In a Ledger transactions and prices are always in chronological order.
type Ledger struct {
	transactions []Transaction
	prices       []PricePoint
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds transactions to the ledger, keeping the chronological order.
// Transactions on the same day keep their insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
}

// AppendPrices adds price points to the ledger, keeping the chronological order.
func (l *Ledger) AppendPrices(pps ...PricePoint) {
	l.prices = append(l.prices, pps...)
	slices.SortStableFunc(l.prices, func(a, b PricePoint) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Commodity, b.Commodity)
	})
}

// Transactions returns the ledger's transactions in chronological order.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// Prices returns the ledger's price points in chronological order.
func (l *Ledger) Prices() []PricePoint { return l.prices }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// FirstDate returns the date of the first transaction, or the zero date.
func (l *Ledger) FirstDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].Date
}

// LastDate returns the date of the last transaction or price point, or the zero date.
func (l *Ledger) LastDate() date.Date {
	var last date.Date
	if n := len(l.transactions); n > 0 {
		last = l.transactions[n-1].Date
	}
	if n := len(l.prices); n > 0 && l.prices[n-1].Date.After(last) {
		last = l.prices[n-1].Date
	}
	return last
}

// Accounts returns the sorted list of all accounts used in the ledger.
func (l *Ledger) Accounts() []string {
	var accounts []string
	for _, tx := range l.transactions {
		for _, p := range tx.Postings {
			accounts = append(accounts, p.Account)
		}
	}
	slices.Sort(accounts)
	return slices.Compact(accounts)
}
