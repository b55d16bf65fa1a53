package services

import (
	"time"

	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
	"github.com/renato0307/playsound/internal/ports"
)

// PlaybackService serves every playback call through the backend chosen at startup
type PlaybackService struct {
	player    ports.SoundPlayer
	selection domain.BackendSelection
}

// NewPlaybackService creates a PlaybackService bound to player
func NewPlaybackService(selection domain.BackendSelection, player ports.SoundPlayer) *PlaybackService {
	return &PlaybackService{
		player:    player,
		selection: selection,
	}
}

// ResolvePlaybackService probes the host through d and binds the result
func ResolvePlaybackService(d *Dispatcher) (*PlaybackService, error) {
	selection, player, err := d.Resolve()
	if err != nil {
		logging.Logger.Error("No playback backend available", "os", selection.OS, "error", err)
		return nil, err
	}
	return NewPlaybackService(selection, player), nil
}

// Play runs one playback request
func (s *PlaybackService) Play(req domain.PlaybackRequest) error {
	logging.Logger.Debug("Playing sound",
		"target", req.Target,
		"block", req.Block,
		"backend", s.selection.Backend)

	start := time.Now()
	if err := s.player.Play(req.Target, req.Block); err != nil {
		logging.Logger.Error("Playback failed", "target", req.Target, "error", err)
		return err
	}

	logging.Logger.Debug("Playback call returned",
		"target", req.Target,
		"elapsed", time.Since(start))
	return nil
}

// Selection returns the backend selection this service is bound to
func (s *PlaybackService) Selection() domain.BackendSelection {
	return s.selection
}
