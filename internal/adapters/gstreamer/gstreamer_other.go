//go:build !linux && !freebsd

package gstreamer

import (
	"fmt"
	"runtime"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/ports"
)

// Library is unavailable on this platform
type Library struct{}

// Open always fails on this platform
func Open() (*Library, error) {
	return nil, fmt.Errorf("%w: gstreamer binding is not built for %s", domain.ErrBackendUnavailable, runtime.GOOS)
}

func (l *Library) NewPlaybin() (ports.Pipeline, error) {
	return nil, fmt.Errorf("%w: gstreamer binding is not built for %s", domain.ErrBackendUnavailable, runtime.GOOS)
}
