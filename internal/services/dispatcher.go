package services

import (
	"fmt"
	"runtime"

	"github.com/renato0307/playsound/internal/adapters/appkit"
	"github.com/renato0307/playsound/internal/adapters/gstreamer"
	"github.com/renato0307/playsound/internal/adapters/process"
	adaptersound "github.com/renato0307/playsound/internal/adapters/sound"
	"github.com/renato0307/playsound/internal/adapters/winmm"
	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/ports"
)

// Loaders open the in-process native bindings. Each returns an error when the
// binding cannot be loaded on this host.
type Loaders struct {
	ControlString func() (ports.ControlInterface, error)
	SoundObject   func() (ports.SoundObjectAPI, error)
	Pipeline      func() (ports.PipelineLibrary, error)
}

// HostLoaders returns the loaders for the real native libraries
func HostLoaders() Loaders {
	return Loaders{
		ControlString: func() (ports.ControlInterface, error) {
			c, err := winmm.Open()
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		SoundObject: func() (ports.SoundObjectAPI, error) {
			lib, err := appkit.Open()
			if err != nil {
				return nil, err
			}
			return lib, nil
		},
		Pipeline: func() (ports.PipelineLibrary, error) {
			lib, err := gstreamer.Open()
			if err != nil {
				return nil, err
			}
			return lib, nil
		},
	}
}

// Dispatcher picks the playback backend for the host
type Dispatcher struct {
	config  config.Config
	goos    string
	loaders Loaders
	runner  ports.ProcessRunner
}

// NewDispatcher creates a dispatcher for the current host
func NewDispatcher(cfg config.Config) *Dispatcher {
	return NewDispatcherFor(runtime.GOOS, cfg, HostLoaders(), process.NewOSRunner())
}

// NewDispatcherFor creates a dispatcher for an explicit OS and set of loaders
func NewDispatcherFor(goos string, cfg config.Config, loaders Loaders, runner ports.ProcessRunner) *Dispatcher {
	return &Dispatcher{
		config:  cfg,
		goos:    goos,
		loaders: loaders,
		runner:  runner,
	}
}

// Resolve probes the host once and returns the selection with its backend.
//
//	windows                      -> control-string (winmm)
//	darwin, AppKit loadable      -> native-object (NSSound)
//	darwin, otherwise            -> process delegation
//	other, GStreamer loadable    -> streaming pipeline (playbin)
//	other, otherwise             -> process delegation
//
// A delegated child never delegates again; it reports the load error instead.
func (d *Dispatcher) Resolve() (domain.BackendSelection, ports.SoundPlayer, error) {
	sel := domain.BackendSelection{OS: d.goos, Delegated: d.config.Delegated}

	switch d.goos {
	case "windows":
		sel.Backend = domain.BackendControlString
		mci, err := d.loaders.ControlString()
		if err != nil {
			return sel, nil, unavailable(sel, err)
		}
		return d.selected(sel, adaptersound.NewMCIPlayer(mci))

	case "darwin":
		sel.Backend = domain.BackendNativeObject
		api, err := d.loaders.SoundObject()
		if err != nil {
			return d.fallback(sel, err)
		}
		return d.selected(sel, adaptersound.NewNSSoundPlayer(api, d.config.LoadAttempts))

	default:
		sel.Backend = domain.BackendPipeline
		lib, err := d.loaders.Pipeline()
		if err != nil {
			return d.fallback(sel, err)
		}
		return d.selected(sel, adaptersound.NewPipelinePlayer(lib))
	}
}

// fallback swaps an unloadable native backend for process delegation
func (d *Dispatcher) fallback(sel domain.BackendSelection, loadErr error) (domain.BackendSelection, ports.SoundPlayer, error) {
	if d.config.Delegated {
		return sel, nil, unavailable(sel, loadErr)
	}

	logging.Logger.Warn("Native binding unavailable, relying on a delegate process",
		"backend", sel.Backend,
		"delegate", d.config.DelegateCommand,
		"error", loadErr)

	sel.Reason = fmt.Sprintf("%s binding unavailable", sel.Backend)
	sel.Backend = domain.BackendDelegate
	return d.selected(sel, adaptersound.NewDelegator(d.runner, d.config.DelegateCommand, d.config.DelegateURI))
}

func (d *Dispatcher) selected(sel domain.BackendSelection, player ports.SoundPlayer) (domain.BackendSelection, ports.SoundPlayer, error) {
	logging.Logger.Info("Playback backend selected", "selection", sel.String())
	return sel, player, nil
}

func unavailable(sel domain.BackendSelection, err error) error {
	return domain.NewPlaybackError(domain.ErrBackendUnavailable, string(sel.Backend), err)
}
