// Package playsound plays a single audio file or stream with the native
// multimedia facility of the host: winmm on Windows, NSSound on macOS and a
// GStreamer playbin elsewhere. When the native library cannot be loaded the
// sound is played by a separate player process instead.
//
// The backend is chosen on first use and kept for the life of the process.
package playsound

import (
	"sync"

	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/services"
)

// Error kinds returned by Play, matched with errors.Is
var (
	ErrBackendUnavailable     = domain.ErrBackendUnavailable
	ErrCannotOpen             = domain.ErrCannotOpen
	ErrControlCommand         = domain.ErrControlCommand
	ErrDelegatedProcessFailed = domain.ErrDelegatedProcessFailed
	ErrFileNotFound           = domain.ErrFileNotFound
	ErrInvalidTarget          = domain.ErrInvalidTarget
	ErrLoadFailed             = domain.ErrLoadFailed
	ErrPipeline               = domain.ErrPipeline
)

// Error is the failure type of every backend
type Error = domain.PlaybackError

// MCIError is a failed Windows media control command
type MCIError = domain.MCIError

// Selection describes the backend serving this process
type Selection = domain.BackendSelection

var service = sync.OnceValues(func() (*services.PlaybackService, error) {
	return services.ResolvePlaybackService(services.NewDispatcher(config.Load()))
})

// Play plays target, a local path or a URI. With block set it returns once
// playback has finished; otherwise it returns as soon as playback started.
func Play(target string, block bool) error {
	svc, err := service()
	if err != nil {
		return err
	}
	return svc.Play(domain.PlaybackRequest{Target: target, Block: block})
}

// Backend returns the backend selected for this process
func Backend() (Selection, error) {
	svc, err := service()
	if err != nil {
		return Selection{}, err
	}
	return svc.Selection(), nil
}
