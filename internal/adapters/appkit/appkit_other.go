//go:build !darwin

package appkit

import (
	"fmt"
	"runtime"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/ports"
)

// Library is unavailable outside macOS
type Library struct{}

// Open always fails outside macOS
func Open() (*Library, error) {
	return nil, fmt.Errorf("%w: AppKit is not available on %s", domain.ErrBackendUnavailable, runtime.GOOS)
}

func (l *Library) URLWithString(string) (ports.SoundURL, bool) { return nil, false }

func (l *Library) LoadByReference(ports.SoundURL) (ports.SoundObject, bool) { return nil, false }
