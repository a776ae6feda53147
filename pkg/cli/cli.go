// Package cli implements the synthd command-line commands.
package cli

import (
	"log/slog"

	"github.com/synthd/synthd/pkg/config"
	"github.com/synthd/synthd/pkg/logging"
	"github.com/synthd/synthd/pkg/store"
)

// openStore opens the store named by path. An empty path or ":memory:"
// selects the in-memory store; anything else is a bbolt database file.
func openStore(path string) (store.Store, error) {
	if path == "" || path == ":memory:" {
		return store.NewMemory(), nil
	}
	return store.OpenBolt(path)
}

// newLogger builds a logger from config.
func newLogger(cfg config.Log) *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Level),
		Format: logging.ParseFormat(cfg.Format),
	})
}

// logConfig builds a text-format log config for the given level.
func logConfig(level string) config.Log {
	return config.Log{Level: level, Format: "text"}
}
