// Package export serializes full store snapshots to JSON, CSV, and YAML.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/synthd/synthd/pkg/entity"
	"github.com/synthd/synthd/pkg/logging"
	"github.com/synthd/synthd/pkg/store"
)

// Format is a supported export format.
type Format string

// Supported formats. FormatYAML is the structured-text (block-style) format.
const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatYAML    Format = "yaml"
	FormatUnknown Format = ""
)

// Exported file names. These are part of the compatibility surface for
// downstream tooling.
const (
	JSONFileName = "exported_data.json"
	YAMLFileName = "exported_data.yaml"
)

// ParseFormat parses a format string. "structured-text" and "yml" are
// accepted aliases for yaml. Returns FormatUnknown for anything else.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "yaml", "yml", "structured-text":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// UnsupportedFormatError is returned before any I/O when the requested
// format is not one of the recognized three.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (supported: json, csv, yaml)", e.Format)
}

// Result describes a completed export.
type Result struct {
	Format   Format   `json:"format"`
	Files    []string `json:"files"`
	Users    int      `json:"users"`
	Products int      `json:"products"`
	Orders   int      `json:"orders"`
}

// snapshot is the logical export shape shared by JSON and YAML.
type snapshot struct {
	Users    []*entity.User    `json:"users" yaml:"users"`
	Products []*entity.Product `json:"products" yaml:"products"`
	Orders   []*entity.Order   `json:"orders" yaml:"orders"`
}

// Exporter reads full snapshots from a store and writes them to files in a
// target directory. It is read-only with respect to the store, so exports
// of different formats may run concurrently.
type Exporter struct {
	store store.Store
	dir   string
	log   *slog.Logger
}

// New creates an Exporter writing into dir (created on demand).
func New(st store.Store, dir string, log *slog.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Exporter{store: st, dir: dir, log: log}
}

// Export snapshots the store and writes the requested format. The format is
// validated before any store read or file I/O. Given an unchanged store,
// repeated exports produce byte-identical output.
func (e *Exporter) Export(format Format) (*Result, error) {
	switch format {
	case FormatJSON, FormatCSV, FormatYAML:
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}

	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result := &Result{
		Format:   format,
		Users:    len(snap.Users),
		Products: len(snap.Products),
		Orders:   len(snap.Orders),
	}

	switch format {
	case FormatJSON:
		result.Files, err = e.writeJSON(snap)
	case FormatCSV:
		result.Files, err = e.writeCSV(snap)
	case FormatYAML:
		result.Files, err = e.writeYAML(snap)
	}
	if err != nil {
		return nil, err
	}

	e.log.Info("export complete", "format", format,
		"users", result.Users, "products", result.Products, "orders", result.Orders,
		"files", len(result.Files))
	return result, nil
}

func (e *Exporter) snapshot() (*snapshot, error) {
	users, err := e.store.Users()
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	products, err := e.store.Products()
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	orders, err := e.store.Orders()
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return &snapshot{Users: users, Products: products, Orders: orders}, nil
}

func (e *Exporter) writeJSON(snap *snapshot) ([]string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(e.dir, JSONFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return []string{path}, nil
}

func (e *Exporter) writeYAML(snap *snapshot) ([]string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	path := filepath.Join(e.dir, YAMLFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return []string{path}, nil
}
