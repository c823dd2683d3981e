// Package storage persists the transaction ledger to a JSON file.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plureonic/cashflow/internal/common"
	"github.com/plureonic/cashflow/internal/model"
)

// ledgerFile is the on-disk representation: a single JSON object holding
// the transactions in insertion order.
type ledgerFile struct {
	Transactions []model.Transaction `json:"transactions"`
}

// JSONStore reads and writes the ledger file. It is the sole owner of the
// on-disk collection; everything above it works on in-memory snapshots.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path. The file does
// not need to exist yet.
func NewJSONStore(path string) (*JSONStore, error) {
	if path == "" {
		return nil, fmt.Errorf("ledger file path is required")
	}
	return &JSONStore{path: path}, nil
}

// Path returns the ledger file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load returns the stored transactions in insertion order. A missing file
// is an empty ledger; malformed content is a fatal read error, never
// silently discarded.
func (s *JSONStore) Load(ctx context.Context) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file %s: %w", s.path, err)
	}

	var file ledgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptData, s.path, err)
	}
	if file.Transactions == nil {
		file.Transactions = []model.Transaction{}
	}
	return file.Transactions, nil
}

// Save replaces the stored collection with txns, preserving their order.
// The write is atomic: content lands in a temp file that is renamed over
// the ledger file.
func (s *JSONStore) Save(ctx context.Context, txns []model.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if txns == nil {
		txns = []model.Transaction{}
	}
	data, err := json.MarshalIndent(ledgerFile{Transactions: txns}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cashflow-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file %s: %w", s.path, err)
	}
	return nil
}
