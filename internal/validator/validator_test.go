package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "shell = \"nav\"\nseed = 3\nlog_file = \""+filepath.ToSlash(filepath.Join(dir, "game.log"))+"\"\n")

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestUnknownShell(t *testing.T) {
	path := writeConfig(t, "shell = \"gui\"\n")

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], `unsupported shell: "gui"`)
}

func TestWarnings(t *testing.T) {
	path := writeConfig(t, "difficulty = \"hard\"\nlog_file = \"/no/such/dir/game.log\"\n")

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Contains(t, results.Warnings, "unknown key: difficulty")
	assert.Contains(t, results.Warnings, `shell not set, "line" will be used`)
	assert.Contains(t, results.Warnings, "log directory does not exist yet: /no/such/dir")
}

func TestLogParentIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	path := writeConfig(t, "shell = \"line\"\nlog_file = \""+filepath.ToSlash(filepath.Join(file, "game.log"))+"\"\n")

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "not a directory")
}

func TestMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	assert.ErrorContains(t, err, "config file not found")
}

func TestBrokenFile(t *testing.T) {
	path := writeConfig(t, "shell = [\n")

	_, err := NewValidator(path).Validate()
	assert.ErrorContains(t, err, "error parsing config.toml")
}
