package model

import (
	"fmt"

	"github.com/plureonic/cashflow/internal/common"
)

// Direction tells whether a transaction moves money in or out.
type Direction string

// The two recognized direction tokens.
const (
	Inflow  Direction = "inflow"
	Outflow Direction = "outflow"
)

// ParseDirection validates a direction token at the input boundary.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Inflow, Outflow:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected inflow or outflow)", common.ErrInvalidDirection, s)
	}
}

// Valid reports whether the direction is one of the recognized tokens.
func (d Direction) Valid() bool {
	return d == Inflow || d == Outflow
}
