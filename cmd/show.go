package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/guestmail/internal/templates"
)

// ShowCommand returns the show command
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a template's subject, body, and required fields",
		ArgsUsage: "TEMPLATE_ID",
		Action:    runShow,
	}
}

func runShow(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template id")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	t, err := store.Get(c.Args().Get(0))
	if err != nil {
		return err
	}

	fmt.Printf("Template: %s\n", t.ID)
	if t.Subject != "" {
		fmt.Printf("Subject: %s\n", t.Subject)
	}
	fmt.Printf("\n%s\n", t.Body)
	fmt.Printf("Required fields: %s\n", strings.Join(templates.RequiredFields(t), ", "))
	return nil
}
