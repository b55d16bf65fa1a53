package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment isolates a command from the caller's PLAYSOUND_* settings
// and points log output at a temp directory.
type TestEnvironment struct {
	StateHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		StateHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns the process environment with PLAYSOUND_* variables removed,
// XDG_STATE_HOME and LOCALAPPDATA redirected, and extra variables applied.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"XDG_STATE_HOME": true,
		"LOCALAPPDATA":   true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "PLAYSOUND_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"XDG_STATE_HOME="+e.StateHome,
		"LOCALAPPDATA="+e.StateHome,
		"PLAYSOUND_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// LogDir returns where debug logs land for this environment on Linux.
func (e *TestEnvironment) LogDir() string {
	return filepath.Join(e.StateHome, "playsound")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile creates a file inside the environment's temp directory and
// returns its absolute path.
func (e *TestEnvironment) WriteFile(name string, data []byte) string {
	e.tb.Helper()

	path := filepath.Join(e.StateHome, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
