package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/playsound/internal/cmd"
	"github.com/renato0307/playsound/internal/theme"
	"github.com/renato0307/playsound/internal/version"
)

func main() {
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("playsound"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", theme.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
