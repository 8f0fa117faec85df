package repl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xunicatt/eta/repl"
)

func TestLoadConfigMissingFileIsZero(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := repl.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, repl.Config{}, cfg)
}

func TestLoadConfigParsesOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	data := "prompt: \"eta> \"\ncolor: false\nbanner: custom\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, repl.ConfigFileName), []byte(data), 0o644))

	cfg, err := repl.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "eta> ", cfg.Prompt)
	assert.Equal(t, "custom", cfg.Banner)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
}

func TestApplyOverlaysOnlySetFields(t *testing.T) {
	r := repl.NewRepl("banner", "1.0", "author", "----", "MIT", ">> ")
	repl.Config{Prompt: "$ "}.Apply(r)

	assert.Equal(t, "$ ", r.Prompt)
	assert.Equal(t, "banner", r.Banner)
	assert.True(t, r.Color)
}
