package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/playsound/internal/logging"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	for _, key := range []string{logging.EnvDebug, logging.EnvDebugFile, logging.EnvMaxLogFiles} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("playsound"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestCLI_DefaultCommandIsPlay(t *testing.T) {
	cli, ctx := parse(t, "music.mp3")

	assert.Equal(t, "play <target>", ctx.Command())
	assert.Equal(t, "music.mp3", cli.Play.Target)
	require.NotNil(t, cli.Container)
}

func TestCLI_ExplicitPlay(t *testing.T) {
	cli, ctx := parse(t, "play", "https://example.com/a.wav")

	assert.Equal(t, "play <target>", ctx.Command())
	assert.Equal(t, "https://example.com/a.wav", cli.Play.Target)
}

func TestCLI_BackendCommand(t *testing.T) {
	_, ctx := parse(t, "backend")

	assert.Equal(t, "backend", ctx.Command())
}

func TestCLI_DebugFileSharedWithChildren(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the open log file blocks temp dir removal on windows")
	}
	logFile := filepath.Join(t.TempDir(), "debug.log")

	cli, _ := parse(t, "--debug-file", logFile, "a.wav")

	assert.Equal(t, logFile, cli.DebugFile)
	assert.FileExists(t, logFile)
	assert.Equal(t, "1", os.Getenv(logging.EnvDebug))
	assert.Equal(t, logFile, os.Getenv(logging.EnvDebugFile))

	t.Cleanup(func() {
		os.Unsetenv(logging.EnvDebug)
		os.Unsetenv(logging.EnvDebugFile)
		_, _ = logging.Initialize(false, "", logging.DefaultMaxLogFiles)
	})
}
