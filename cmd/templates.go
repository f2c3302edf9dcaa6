package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/guestmail/internal/templates"
)

// TemplatesCommand returns the templates command
func TemplatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "Manage the template file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a template file seeded with the default hotel templates",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to the configured templates path)",
					},
				},
				Action: runTemplatesInit,
			},
			{
				Name:      "add",
				Usage:     "Add a new template",
				ArgsUsage: "TEMPLATE_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "subject",
						Usage: "Subject line, may contain {placeholders}",
					},
					&cli.StringFlag{
						Name:  "body",
						Usage: "Body text, may contain {placeholders}",
					},
					&cli.StringFlag{
						Name:  "body-file",
						Usage: "Read the body from `FILE` instead of --body",
					},
				},
				Action: runTemplatesAdd,
			},
			{
				Name:      "update",
				Usage:     "Update an existing template's subject and/or body",
				ArgsUsage: "TEMPLATE_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "subject",
						Usage: "New subject line",
					},
					&cli.StringFlag{
						Name:  "body",
						Usage: "New body text",
					},
					&cli.StringFlag{
						Name:  "body-file",
						Usage: "Read the new body from `FILE`",
					},
				},
				Action: runTemplatesUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a template",
				ArgsUsage: "TEMPLATE_ID",
				Action:    runTemplatesDelete,
			},
		},
	}
}

func runTemplatesInit(c *cli.Context) error {
	path := c.String("output")
	if path == "" {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		path = cfg.General.Templates
	}

	if err := templates.Init(path); err != nil {
		return err
	}
	fmt.Printf("Created template file at %s\n", path)
	return nil
}

func runTemplatesAdd(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template id")
	}

	body, err := bodyFromFlags(c)
	if err != nil {
		return err
	}
	if body == "" {
		return fmt.Errorf("a body is required: use --body or --body-file")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	t := templates.Template{
		ID:      c.Args().Get(0),
		Subject: c.String("subject"),
		Body:    body,
	}
	if err := store.Add(t); err != nil {
		return err
	}

	fmt.Printf("Template %q created\n", t.ID)
	return nil
}

func runTemplatesUpdate(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template id")
	}
	id := c.Args().Get(0)

	var subject, body *string
	if c.IsSet("subject") {
		s := c.String("subject")
		subject = &s
	}
	if c.IsSet("body") || c.IsSet("body-file") {
		b, err := bodyFromFlags(c)
		if err != nil {
			return err
		}
		body = &b
	}
	if subject == nil && body == nil {
		return fmt.Errorf("nothing to update: use --subject, --body, or --body-file")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := store.Update(id, subject, body); err != nil {
		return err
	}
	fmt.Printf("Template %q updated\n", id)
	return nil
}

func runTemplatesDelete(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template id")
	}
	id := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := store.Delete(id); err != nil {
		return err
	}
	fmt.Printf("Template %q deleted\n", id)
	return nil
}

func bodyFromFlags(c *cli.Context) (string, error) {
	if path := c.String("body-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read body file: %w", err)
		}
		return string(data), nil
	}
	return c.String("body"), nil
}
