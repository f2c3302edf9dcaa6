package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/guestmail/internal/templates"
)

// ListCommand returns the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available template ids",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Also show the required fields of each template",
			},
		},
		Action: runList,
	}
}

func runList(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	for _, t := range store.List() {
		if c.Bool("verbose") {
			fields := templates.RequiredFields(t)
			fmt.Printf("%s  (fields: %s)\n", t.ID, strings.Join(fields, ", "))
		} else {
			fmt.Println(t.ID)
		}
	}
	return nil
}
