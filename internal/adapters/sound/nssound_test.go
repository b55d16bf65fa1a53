package sound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/domain"
)

func newTestNSSoundPlayer(api *fakeSoundAPI) (*NSSoundPlayer, *[]time.Duration) {
	var slept []time.Duration
	p := NewNSSoundPlayer(api, config.DefaultLoadAttempts)
	p.sleep = func(d time.Duration) { slept = append(slept, d) }
	return p, &slept
}

func TestNSSoundPlayer_BlockingSleepsForDuration(t *testing.T) {
	api := &fakeSoundAPI{duration: 1500 * time.Millisecond}
	p, slept := newTestNSSoundPlayer(api)

	err := p.Play("/tmp/a b.wav", true)

	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/a%20b.wav", api.lastURI)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, *slept)
	assert.True(t, api.loadedSound.played)
	assert.True(t, api.loadedSound.released)
}

func TestNSSoundPlayer_NonBlockingReturnsImmediately(t *testing.T) {
	api := &fakeSoundAPI{duration: time.Minute}
	p, slept := newTestNSSoundPlayer(api)

	err := p.Play("https://example.com/a.wav", false)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.wav", api.lastURI)
	assert.Empty(t, *slept)
	assert.True(t, api.loadedSound.played)
	assert.False(t, api.loadedSound.released)
}

func TestNSSoundPlayer_LoadRetries(t *testing.T) {
	tests := []struct {
		name      string
		failLoads int
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", 0, false, 1},
		{"succeeds on fifth attempt", 4, false, 5},
		{"fails all five attempts", 5, true, 5},
		{"never loads", 100, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeSoundAPI{failLoads: tt.failLoads}
			p, _ := newTestNSSoundPlayer(api)

			err := p.Play("/tmp/a.wav", false)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrLoadFailed)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, api.loadCalls)
		})
	}
}

func TestNSSoundPlayer_RejectedURL(t *testing.T) {
	api := &fakeSoundAPI{rejectURL: true}
	p, _ := newTestNSSoundPlayer(api)

	err := p.Play("/tmp/a.wav", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	assert.Equal(t, 0, api.loadCalls)
}

func TestNSSoundPlayer_PlayRefused(t *testing.T) {
	api := &fakeSoundAPI{refusePlay: true}
	p, slept := newTestNSSoundPlayer(api)

	err := p.Play("/tmp/a.wav", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
	assert.Empty(t, *slept)
	assert.True(t, api.loadedSound.released)
}

func TestNewNSSoundPlayer_DefaultAttempts(t *testing.T) {
	p := NewNSSoundPlayer(&fakeSoundAPI{}, 0)
	assert.Equal(t, config.DefaultLoadAttempts, p.loadAttempts)
}
