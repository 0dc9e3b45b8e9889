package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	base := []string{"--config", filepath.Join(dir, "config.json"), "--log-file", ""}
	rootCmd.SetArgs(append(args, base...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckBuiltinSeed(t *testing.T) {
	out, err := runCLI(t, "check", "--seed", "")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in seed: 3 notes, 1 with images")
}

func TestCheckSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {id: 1, text: a, color: blue}\n- {id: 2, text: b, color: pink, imageUrl: 'https://example.com/b.png'}\n"), 0600))

	out, err := runCLI(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 notes, 1 with images")
}

func TestCheckReportsBadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "text": ""}]`), 0600))

	_, err := runCLI(t, "check", path)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "noteboard version dev\n", out)
}
