package sound

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/pathuri"
	"github.com/renato0307/playsound/internal/ports"
)

// Delegator plays sounds by running a separate player process
type Delegator struct {
	runner  ports.ProcessRunner
	command []string
	uriArg  bool
	stat    func(string) (os.FileInfo, error)

	// finished is called by the worker goroutine once the child exits
	finished func(target string, err error)
}

// Compile-time interface verification
var _ ports.SoundPlayer = (*Delegator)(nil)

// NewDelegator creates a process-delegation fallback. command is the program
// and its leading arguments; the target is appended as the last argument,
// normalized to a URI when uriArg is set.
func NewDelegator(runner ports.ProcessRunner, command []string, uriArg bool) *Delegator {
	return &Delegator{
		runner:   runner,
		command:  command,
		uriArg:   uriArg,
		stat:     os.Stat,
		finished: func(string, error) {},
	}
}

// Play checks that target exists and runs the delegate on a worker goroutine.
// Blocking calls join the worker and surface a failed child as
// ErrDelegatedProcessFailed. Non-blocking failures are only logged.
func (d *Delegator) Play(target string, block bool) error {
	if len(d.command) == 0 {
		return domain.NewPlaybackError(domain.ErrBackendUnavailable, target, errors.New("no delegate command configured"))
	}

	path, err := filepath.Abs(target)
	if err != nil {
		return domain.NewPlaybackError(domain.ErrFileNotFound, target, err)
	}
	if _, err := d.stat(path); err != nil {
		return domain.NewPlaybackError(domain.ErrFileNotFound, target, nil)
	}

	arg := path
	if d.uriArg {
		if arg, err = pathuri.Normalize(path); err != nil {
			return domain.NewPlaybackError(domain.ErrInvalidTarget, target, err)
		}
	}

	name := d.command[0]
	args := append(append([]string{}, d.command[1:]...), arg)
	env := []string{config.EnvDelegated + "=1"}

	logging.Logger.Debug("Delegating playback", "program", name, "args", args, "block", block)

	var g errgroup.Group
	g.Go(func() error {
		err := d.runner.Run(name, args, env)
		if err != nil && !block {
			logging.Logger.Warn("Delegated playback failed", "target", target, "error", err)
		}
		d.finished(target, err)
		return err
	})

	if !block {
		return nil
	}

	if err := g.Wait(); err != nil {
		return domain.NewPlaybackError(domain.ErrDelegatedProcessFailed, target, err)
	}
	return nil
}
