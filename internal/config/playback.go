package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// DefaultLoadAttempts is how often the native sound object loader is tried
const DefaultLoadAttempts = 5

// Environment variables read by Load
const (
	EnvDelegate     = "PLAYSOUND_DELEGATE"
	EnvDelegateURI  = "PLAYSOUND_DELEGATE_URI"
	EnvDelegated    = "PLAYSOUND_DELEGATED"
	EnvLoadAttempts = "PLAYSOUND_LOAD_ATTEMPTS"
)

// Config holds the playback settings. There is no configuration file; values
// come from the environment and CLI flags.
type Config struct {
	// DelegateCommand is the program and leading arguments used by the
	// process-delegation fallback. The target is appended as the last argument.
	DelegateCommand []string

	// DelegateURI passes the target as a normalized URI instead of a path
	DelegateURI bool

	// Delegated is true when this process was started by the delegation fallback
	Delegated bool

	// LoadAttempts bounds native sound object loading
	LoadAttempts int
}

// Load reads the configuration for the running host
func Load() Config {
	return load(os.Getenv, exec.LookPath, os.Executable, runtime.GOOS)
}

func load(
	getenv func(string) string,
	lookPath func(string) (string, error),
	executable func() (string, error),
	goos string,
) Config {
	cfg := Config{
		Delegated:    getenv(EnvDelegated) == "1",
		LoadAttempts: DefaultLoadAttempts,
	}

	if v := getenv(EnvLoadAttempts); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LoadAttempts = n
		}
	}

	if v := strings.Fields(getenv(EnvDelegate)); len(v) > 0 {
		v[0] = ExpandPath(v[0])
		cfg.DelegateCommand = v
		cfg.DelegateURI = getenv(EnvDelegateURI) == "1"
		return cfg
	}

	cfg.DelegateCommand, cfg.DelegateURI = defaultDelegate(lookPath, executable, goos)
	return cfg
}

// delegateCandidates lists system players that take a file as last argument
func delegateCandidates(goos string) [][]string {
	if goos == "darwin" {
		return [][]string{{"afplay"}}
	}
	return [][]string{
		{"gst-play-1.0", "--no-interactive"},
		{"paplay"},
		{"ffplay", "-nodisp", "-autoexit", "-loglevel", "error"},
	}
}

// defaultDelegate picks the first installed system player. A playsound child
// loads the same native bindings as its parent and so can only succeed where
// the parent could, which is why running this program's own play command is
// the last resort.
func defaultDelegate(
	lookPath func(string) (string, error),
	executable func() (string, error),
	goos string,
) ([]string, bool) {
	for _, candidate := range delegateCandidates(goos) {
		if path, err := lookPath(candidate[0]); err == nil {
			cmd := append([]string{path}, candidate[1:]...)
			return cmd, false
		}
	}

	self, err := executable()
	if err != nil {
		self = filepath.Base(os.Args[0])
	}
	// playsound itself understands URIs, which keeps non-ASCII paths intact on macOS
	return []string{self, "play"}, goos == "darwin"
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
