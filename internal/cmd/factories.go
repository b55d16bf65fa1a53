package cmd

import (
	"github.com/renato0307/playsound/internal/config"
	"github.com/renato0307/playsound/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Dispatcher *services.Dispatcher
	Config     config.Config

	playback *services.PlaybackService
}

// NewContainer creates a new Container with all dependencies wired.
// The backend itself is resolved lazily by PlaybackService.
func NewContainer(cfg config.Config) (*Container, error) {
	return &Container{
		Config:     cfg,
		Dispatcher: services.NewDispatcher(cfg),
	}, nil
}

// PlaybackService resolves the backend on first use and returns the bound service
func (c *Container) PlaybackService() (*services.PlaybackService, error) {
	if c.playback != nil {
		return c.playback, nil
	}
	svc, err := services.ResolvePlaybackService(c.Dispatcher)
	if err != nil {
		return nil, err
	}
	c.playback = svc
	return svc, nil
}
