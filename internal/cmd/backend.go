package cmd

import (
	"fmt"
	"strings"

	"github.com/renato0307/playsound/internal/theme"
)

// BackendCmd prints the backend selection for this host
type BackendCmd struct{}

// Run resolves and prints the backend
func (b *BackendCmd) Run(cli *CLI) error {
	svc, err := cli.Container.PlaybackService()
	if err != nil {
		return err
	}
	sel := svc.Selection()

	fmt.Println(theme.TitleStyle.Render("Playback backend"))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("os:       "), sel.OS)
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("backend:  "), theme.ValueStyle.Render(string(sel.Backend)))
	if sel.Reason != "" {
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("reason:   "), theme.WarningStyle.Render(sel.Reason))
		fmt.Printf("%s %s\n", theme.LabelStyle.Render("delegate: "), strings.Join(cli.Container.Config.DelegateCommand, " "))
	}
	return nil
}
