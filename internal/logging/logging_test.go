package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesLeveledLines(t *testing.T) {
	t.Setenv(JSONEnv, "")
	var buf bytes.Buffer
	logger := New("project-identity", "info", &buf)

	logger.Debug("hidden")
	logger.Info("wrote workspace settings", "path", "/ws/.vscode/settings.json")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "project-identity: wrote workspace settings")
	assert.Contains(t, out, "path=/ws/.vscode/settings.json")
}

func TestNewJSON(t *testing.T) {
	t.Setenv(JSONEnv, "1")
	var buf bytes.Buffer
	New("project-identity", "warn", &buf).Warn("corrupted", "kind", "corrupted")

	assert.Contains(t, buf.String(), `"@message":"corrupted"`)
}

func TestLevelDefault(t *testing.T) {
	t.Setenv(LevelEnv, "")
	assert.Equal(t, "warn", Level())

	t.Setenv(LevelEnv, "debug")
	assert.Equal(t, "debug", Level())
}

func TestOpen(t *testing.T) {
	logger, closeFn, err := Open("x", "")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	logger.Error("discarded")
	require.NoError(t, closeFn())

	t.Setenv(LevelEnv, "info")
	t.Setenv(JSONEnv, "")
	path := filepath.Join(t.TempDir(), "run.log")
	logger, closeFn, err = Open("x", path)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
