package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

const (
	// BuildVersion is stamped into the test binary through ldflags
	BuildVersion = "integration"

	versionPackage = "github.com/renato0307/playsound/internal/version"

	// Blocking playback of a short file must finish well within this
	defaultTimeout = 30 * time.Second
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
	TimedOut bool
}

// BuildBinary compiles playsound once per test run with BuildVersion stamped in.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		projectRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		tempDir, err := os.MkdirTemp("", "playsound-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tempDir, binaryName())

		ldflags := fmt.Sprintf("-X %s.Version=%s", versionPackage, BuildVersion)
		cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			buildErr = fmt.Errorf("failed to build playsound: %w", err)
		}
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to cleanup binary directory: %v", err)
	}
}

// RunCommand runs playsound with args in env. A nil env gets a fresh isolated
// environment, so no PLAYSOUND_* setting of the caller leaks into the child.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout is RunCommand with an explicit timeout
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	if env == nil {
		env = NewTestEnvironment(tb)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Dir = env.StateHome

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("playsound %v timed out after %v", args, timeout)
		result.ExitCode = -1
		result.TimedOut = true
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("failed to run playsound %v: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "playsound.exe"
	}
	return "playsound"
}

// findModuleRoot walks up from the working directory to the directory
// holding go.mod
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
