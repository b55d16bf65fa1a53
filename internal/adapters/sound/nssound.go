package sound

import (
	"errors"
	"time"

	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/pathuri"
	"github.com/renato0307/playsound/internal/ports"
)

// NSSoundPlayer plays sounds through a native sound-object API
type NSSoundPlayer struct {
	api          ports.SoundObjectAPI
	loadAttempts int
	sleep        func(time.Duration)
}

// Compile-time interface verification
var _ ports.SoundPlayer = (*NSSoundPlayer)(nil)

// NewNSSoundPlayer creates a native-object backend. loadAttempts below one
// falls back to the default.
func NewNSSoundPlayer(api ports.SoundObjectAPI, loadAttempts int) *NSSoundPlayer {
	if loadAttempts < 1 {
		loadAttempts = config.DefaultLoadAttempts
	}
	return &NSSoundPlayer{
		api:          api,
		loadAttempts: loadAttempts,
		sleep:        time.Sleep,
	}
}

// Play loads and starts target. A blocking call sleeps for the duration the
// sound object reports; it is not an end-of-playback event.
func (p *NSSoundPlayer) Play(target string, block bool) error {
	uri, err := pathuri.Normalize(target)
	if err != nil {
		return domain.NewPlaybackError(domain.ErrInvalidTarget, target, err)
	}

	url, ok := p.api.URLWithString(uri)
	if !ok {
		return domain.NewPlaybackError(domain.ErrInvalidTarget, uri, nil)
	}

	snd, err := p.load(url)
	if err != nil {
		return err
	}

	if !snd.Play() {
		snd.Release()
		return domain.NewPlaybackError(domain.ErrLoadFailed, uri, errors.New("play was refused"))
	}

	if !block {
		// The object stays alive until playback ends; it is never released
		return nil
	}

	duration := snd.Duration()
	logging.Logger.Debug("Waiting for sound", "uri", uri, "duration", duration)
	p.sleep(duration)
	snd.Release()

	return nil
}

// load retries the native loader, which occasionally fails on first use
func (p *NSSoundPlayer) load(url ports.SoundURL) (ports.SoundObject, error) {
	for attempt := 1; attempt <= p.loadAttempts; attempt++ {
		if snd, ok := p.api.LoadByReference(url); ok {
			return snd, nil
		}
		logging.Logger.Debug("Failed to load sound, although url was good",
			"uri", url.URI(),
			"attempt", attempt)
	}
	return nil, domain.NewPlaybackError(domain.ErrLoadFailed, url.URI(), nil)
}
