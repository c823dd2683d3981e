// Package ledger resolves which transactions are active in a given month
// and folds them into a monthly summary. It is stateless and performs no
// I/O: callers hand it a snapshot of the stored transactions and it never
// mutates them.
package ledger

import (
	"github.com/plureonic/cashflow/internal/model"
)

// Summary holds one month's aggregate figures plus the transactions that
// produced them, in insertion order.
type Summary struct {
	Month          model.Month
	OpeningBalance float64
	TotalInflow    float64
	TotalOutflow   float64
	Net            float64
	ClosingBalance float64
	Transactions   []model.Transaction
}

// ListActive filters txns down to those active in m, preserving insertion
// order.
func ListActive(txns []model.Transaction, m model.Month) []model.Transaction {
	active := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.ActiveIn(m) {
			active = append(active, t)
		}
	}
	return active
}

// Summarize folds the transactions active in month m into totals against
// the supplied opening balance. It assumes well-formed input and cannot
// fail.
func Summarize(txns []model.Transaction, m model.Month, openingBalance float64) Summary {
	active := ListActive(txns, m)

	var inflow, outflow float64
	for _, t := range active {
		switch t.Direction {
		case model.Inflow:
			inflow += t.Amount
		case model.Outflow:
			outflow += t.Amount
		}
	}

	net := inflow - outflow
	return Summary{
		Month:          m,
		OpeningBalance: openingBalance,
		TotalInflow:    inflow,
		TotalOutflow:   outflow,
		Net:            net,
		ClosingBalance: openingBalance + net,
		Transactions:   active,
	}
}
