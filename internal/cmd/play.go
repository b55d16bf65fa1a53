package cmd

import (
	"github.com/renato0307/playsound/internal/domain"
	"github.com/renato0307/playsound/internal/logging"
)

// PlayCmd plays one sound to completion. Delegated playback runs this command
// in a child process.
type PlayCmd struct {
	Target string `arg:"" help:"Path or URI of the sound to play"`
}

// Run plays the target and blocks until it ends
func (p *PlayCmd) Run(cli *CLI) error {
	svc, err := cli.Container.PlaybackService()
	if err != nil {
		return err
	}

	logging.Logger.Info("Playing from command line",
		"target", p.Target,
		"delegated", cli.Container.Config.Delegated)

	return svc.Play(domain.PlaybackRequest{Target: p.Target, Block: true})
}
