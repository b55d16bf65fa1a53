package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledByDefault(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello", "key", "value")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitialize_InheritsDebugFileFromEnv(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "child.log")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, logFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, logFile, path)
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	require.NoError(t, rotateLogs(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}
