// Package mymoney simulates a single investor's portfolio ledger.
//
// A portfolio is a fixed set of named assets, each with a balance and a
// target weight; weights are set once and always sum to 100. An ordered
// stream of text commands drives the ledger through simulated months:
//   - allocate: add funds to each asset
//   - sip: set the recurring monthly contribution
//   - change: advance to a month and apply its rate of change
//   - balance: print the balances recorded for a month
//   - rebalance: redistribute the total across assets by weight
//
// All balances are whole currency units: every store truncates toward
// zero. After each change the ledger records a per-month snapshot of
// balances, which later balance commands query.
//
// This package serves as the foundational logic for the `mym` command-line
// tool.
package mymoney
