//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "typeahead.toml")

	cmd := exec.Command(binPath, "--write-config", "--config", path, "--log-file", filepath.Join(dir, "log"))
	cmd.Env = append(os.Environ(), "HOME="+dir, "XDG_CONFIG_HOME="+dir)
	out, err := cmd.CombinedOutput()

	// an explicit path must exist, so writing into a fresh one fails to load
	require.Error(t, err)
	require.Contains(t, string(out), "load config")

	cmd = exec.Command(binPath, "--write-config", "--log-file", filepath.Join(dir, "log"))
	cmd.Env = append(os.Environ(), "HOME="+dir, "XDG_CONFIG_HOME="+dir)
	out, err = cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "Config written to")

	data, err := os.ReadFile(filepath.Join(dir, "typeahead", "config.toml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "Async Search")
	require.Contains(t, string(data), "[[widgets]]")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[widgets]]
choices = ["a"]
filter = "nope"
`), 0644))

	out, err := exec.Command(binPath, "--config", path, "--log-file", filepath.Join(dir, "log")).CombinedOutput()
	require.Error(t, err)
	require.Contains(t, string(out), "unknown filter")
}
