package process

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/ports"
)

// OSRunner implements ProcessRunner using os/exec
type OSRunner struct{}

// Compile-time interface verification
var _ ports.ProcessRunner = (*OSRunner)(nil)

// NewOSRunner creates a new OS process runner
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run starts the program with the inherited environment plus env and waits for it.
// The child's output goes to this process's stdout and stderr.
func (r *OSRunner) Run(name string, args []string, env []string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logging.Logger.Debug("Starting child process", "program", name, "args", args)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with code %d: %w", name, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}

	logging.Logger.Debug("Child process finished", "program", name)
	return nil
}
