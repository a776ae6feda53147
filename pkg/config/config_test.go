package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthd/synthd/pkg/enhance"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.Users)
	assert.Equal(t, 20, cfg.Products)
	assert.Equal(t, 50, cfg.Orders)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "synthd.db", cfg.DB)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users: 100
products: 5
orders: 250
locale: fa_IR
seed: 42
export: csv
enhancer:
  mode: rules
  rules:
    is_active: "len(name) > 5"
log:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Users)
	assert.Equal(t, 5, cfg.Products)
	assert.Equal(t, 250, cfg.Orders)
	assert.Equal(t, "fa_IR", cfg.Locale)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "csv", cfg.Export)
	assert.Equal(t, enhance.ModeRules, cfg.Enhancer.Mode)
	assert.Equal(t, "len(name) > 5", cfg.Enhancer.Rules["is_active"])
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults.
	assert.Equal(t, "synthd.db", cfg.DB)
	assert.Equal(t, ".", cfg.Out)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthd.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": 3, "orders": 0}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Users)
	assert.Equal(t, 0, cfg.Orders)
	assert.Equal(t, 20, cfg.Products)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users: [unclosed"), 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{users:"), 0644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Users = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Export = "structured-text"
	assert.NoError(t, cfg.Validate())
}
