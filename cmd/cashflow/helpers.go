package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/plureonic/cashflow/internal/config"
	"github.com/plureonic/cashflow/internal/model"
	"github.com/plureonic/cashflow/internal/storage"
)

// openStore initializes the ledger store with proper path expansion.
func openStore() (*storage.JSONStore, error) {
	path := config.DataFile()

	store, err := storage.NewJSONStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}

	slog.Debug("using ledger file", "path", path)
	return store, nil
}

// parseAmount parses a non-negative decimal amount, tolerating a leading $.
func parseAmount(input string) (float64, error) {
	input = strings.TrimPrefix(strings.TrimSpace(input), "$")

	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a decimal number: %q", input)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount must not be negative: %q", input)
	}
	return amount, nil
}

// formatSchedule describes when a transaction applies: the single month for
// one-time items, the start month onward (with an optional end) for
// recurring ones.
func formatSchedule(t model.Transaction) string {
	if !t.Recurring {
		return t.StartMonth.String()
	}
	if t.EndMonth != nil {
		return fmt.Sprintf("%s to %s", t.StartMonth, t.EndMonth)
	}
	return t.StartMonth.String() + " onward"
}
