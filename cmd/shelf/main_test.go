package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/shelf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestRunUnknownCommand(t *testing.T) {
	dir := isolate(t)

	err := run([]string{"export"}, options{storePath: filepath.Join(dir, "books.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "export"`)
}

func TestRunUnknownBackend(t *testing.T) {
	isolate(t)

	err := run(nil, options{backend: "sqlite"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}

func TestRunInitWritesConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "conf", "config.yaml")

	err := run([]string{"init"}, options{
		configFile: path,
		storePath:  "~/library.db",
		backend:    "bolt",
	})
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.Store.Backend)
	assert.Equal(t, filepath.Join(dir, "library.db"), cfg.Store.Path)
}
