package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/guestmail/cmd"
)

const (
	version = "0.1.0"
)

func main() {
	app := &cli.App{
		Name:    "guestmail",
		Usage:   "Front-desk email generator for hotel guest correspondence",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
		},
		Commands: []*cli.Command{
			cmd.ListCommand(),
			cmd.ShowCommand(),
			cmd.RenderCommand(),
			cmd.TemplatesCommand(),
			cmd.ConfigCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
