package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flywave/go-sphrot"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "check.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverlay(t *testing.T) {
	a := assert.New(t)

	path := writeConfig(t, `
samples: 101
to: [0, 1, 0]
caps: [0.25]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	a.Equal(101, cfg.Samples)
	a.Equal([]float64{0, 0, 1}, cfg.From)
	a.Equal([]float64{0, 1, 0}, cfg.To)
	a.Equal([]float64{0.25}, cfg.Caps)
	a.Equal("linear", cfg.Method)
}

func TestLoadConfigErrors(t *testing.T) {
	a := assert.New(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	a.ErrorIs(err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "samples: [1, 2"))
	a.Error(err)

	_, err = LoadConfig(writeConfig(t, "method: cubic\n"))
	a.ErrorIs(err, sphrot.ErrBadMethod)

	_, err = LoadConfig(writeConfig(t, "samples: 2\n"))
	a.Error(err)

	_, err = LoadConfig(writeConfig(t, "from: [1, 0]\n"))
	a.Error(err)

	_, err = LoadConfig(writeConfig(t, "caps: [1.5]\n"))
	a.Error(err)
}
