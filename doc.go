// Package returns computes the money-weighted and the time-weighted rates of
// return of a subset of the accounts of a double-entry ledger.
//
// The accounts are classified by two sets of regular expressions:
//   - Tracked accounts hold the portfolio being measured (a brokerage account).
//   - Internal accounts feed the portfolio without being a cashflow (reinvested
//     dividends, capital gains distributions).
//   - Every other account is External: money moving between an external
//     account and a tracked one is a cashflow.
//
// The money-weighted return (XIRR) is the annualized rate that zeroes the net
// present value of the cashflows, opened with the value of the tracked
// accounts at the start and closed with their value at the end. The
// time-weighted return chains the returns of the sub-periods delimited by the
// cashflows, so it does not depend on their timing and size.
//
// Compute is the entry point. It is a pure function of a Ledger, which can be
// read from a JSONL file with DecodeLedger.
package returns
