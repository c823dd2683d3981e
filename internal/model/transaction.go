// Package model defines the ledger's core value types.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Transaction is one recorded cash-flow event. Transactions are immutable
// once created and identified by insertion order in storage; the id exists
// for display and cross-referencing only.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Category    string    `json:"category"`
	StartMonth  Month     `json:"start_month"`
	Recurring   bool      `json:"recurring"`
	EndMonth    *Month    `json:"end_month,omitempty"`
}

// NewTransaction constructs a validated transaction with a fresh id.
func NewTransaction(description string, amount float64, direction Direction, category string, start Month, recurring bool, end *Month) (Transaction, error) {
	t := Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Direction:   direction,
		Category:    category,
		StartMonth:  start,
		Recurring:   recurring,
		EndMonth:    end,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Validate ensures the transaction is well-formed. Everything downstream of
// construction assumes these invariants hold.
func (t Transaction) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("description is required")
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if !t.Direction.Valid() {
		return fmt.Errorf("direction must be %s or %s", Inflow, Outflow)
	}
	if t.StartMonth.IsZero() {
		return fmt.Errorf("start month is required")
	}
	if t.EndMonth != nil && !t.Recurring {
		return fmt.Errorf("end month is only valid for recurring transactions")
	}
	if t.EndMonth != nil && t.EndMonth.Before(t.StartMonth) {
		return fmt.Errorf("end month must not be before start month")
	}
	return nil
}

// ActiveIn reports whether the transaction counts toward month m.
// One-time transactions are active in exactly their start month; recurring
// ones are active from their start month through their end month, or
// indefinitely when no end month is set.
func (t Transaction) ActiveIn(m Month) bool {
	if !t.Recurring {
		return t.StartMonth.Compare(m) == 0
	}
	if m.Before(t.StartMonth) {
		return false
	}
	if t.EndMonth != nil && m.After(*t.EndMonth) {
		return false
	}
	return true
}
