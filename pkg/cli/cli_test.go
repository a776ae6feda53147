package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthd/synthd/pkg/export"
	"github.com/synthd/synthd/pkg/store"
)

func TestOpenStore(t *testing.T) {
	st, err := openStore("")
	require.NoError(t, err)
	_, ok := st.(*store.Memory)
	assert.True(t, ok, "empty path must select the in-memory store")

	st, err = openStore(":memory:")
	require.NoError(t, err)
	_, ok = st.(*store.Memory)
	assert.True(t, ok)

	path := filepath.Join(t.TempDir(), "cli.db")
	st, err = openStore(path)
	require.NoError(t, err)
	_, ok = st.(*store.Bolt)
	assert.True(t, ok, "a file path must select the bbolt store")
	require.NoError(t, st.Close())
}

func TestRunGenerate_WithExport(t *testing.T) {
	out := t.TempDir()

	err := RunGenerate([]string{
		"--db", ":memory:",
		"-u", "2", "-p", "2", "-n", "3",
		"--seed", "7",
		"-e", "json",
		"-o", out,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, export.JSONFileName))
	assert.NoError(t, err, "export file must be written after generation")
}

func TestRunGenerate_PersistsToDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.db")

	err := RunGenerate([]string{"--db", path, "-u", "3", "-p", "1", "-n", "2", "--seed", "1"})
	require.NoError(t, err)

	st, err := store.OpenBolt(path)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	users, err := st.Users()
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestRunGenerate_OrdersWithoutReferents(t *testing.T) {
	err := RunGenerate([]string{"--db", ":memory:", "-u", "0", "-p", "0", "-n", "5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order generation aborted")
}

func TestRunGenerate_InvalidExportFormat(t *testing.T) {
	err := RunGenerate([]string{"--db", ":memory:", "-u", "1", "-p", "1", "-n", "0", "-e", "xml"})
	require.Error(t, err)
}

func TestRunExport_InvalidFormat(t *testing.T) {
	err := RunExport([]string{"-f", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRunExport_FromDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.db")

	require.NoError(t, RunGenerate([]string{"--db", path, "-u", "2", "-p", "1", "-n", "1", "--seed", "3"}))

	out := filepath.Join(dir, "out")
	require.NoError(t, RunExport([]string{"--db", path, "-f", "csv", "-o", out}))

	for _, name := range []string{"users.csv", "products.csv", "orders.csv"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, "%s must exist", name)
	}
}

func TestRunVersion(t *testing.T) {
	err := RunVersion(BuildInfo{Version: "dev", Commit: "none", BuildDate: "unknown"}, nil)
	assert.NoError(t, err)
}
