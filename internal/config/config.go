// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// defaultDataFile is where the ledger lives when no path is configured.
const defaultDataFile = "$HOME/.local/share/cashflow/cashflow.json"

// DataFile resolves the ledger file location from configuration
// (viper key data.path, flag --data, env CASHFLOW_DATA_PATH), falling back
// to the default under $HOME/.local/share.
func DataFile() string {
	path := viper.GetString("data.path")
	if path == "" {
		path = defaultDataFile
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ and $VAR style environment variables in a
// file path.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
