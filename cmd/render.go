package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/guestmail/internal/enrich"
	"github.com/guestmail/internal/render"
	"github.com/guestmail/internal/templates"
)

// RenderCommand returns the render command
func RenderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Fill a template with guest values and emit the message",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "Set a placeholder value as `KEY=VALUE` (repeatable)",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Prompt for any required fields not supplied with --set",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the rendered message to `FILE` instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "enrich",
				Usage: "Generate a personal note via the configured text-generation provider",
			},
			&cli.StringFlag{
				Name:  "note",
				Usage: "Extra stay context for the generated personal note",
			},
		},
		ArgsUsage: "TEMPLATE_ID",
		Action:    runRender,
	}
}

func runRender(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: template id")
	}
	templateID := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	t, err := store.Get(templateID)
	if err != nil {
		return err
	}

	values, err := parseSetValues(c.StringSlice("set"))
	if err != nil {
		return err
	}

	opts := collectOptions{
		Interactive:  c.Bool("interactive"),
		Enrich:       c.Bool("enrich"),
		NoteVariable: cfg.Enrichment.Variable,
		StayContext:  c.String("note"),
	}
	if opts.Enrich {
		if !cfg.Enrichment.Enabled {
			return fmt.Errorf("enrichment is not enabled in the configuration")
		}
		svc, err := enrich.NewService(c.Context, cfg, log.Logger)
		if err != nil {
			return err
		}
		opts.Generate = func(guest enrich.Guest) (string, error) {
			return svc.PersonalNote(c.Context, guest)
		}
	}
	if err := collectValues(t, values, opts, os.Stdin, os.Stdout); err != nil {
		return err
	}

	msg, err := render.Render(t.Subject, t.Body, values)
	if err != nil {
		return err
	}

	out := formatMessage(msg)
	if path := c.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Message written to %s\n", path)
		return nil
	}
	fmt.Print(out)
	return nil
}

type collectOptions struct {
	Interactive  bool
	Enrich       bool
	NoteVariable string
	StayContext  string
	Generate     func(enrich.Guest) (string, error)
}

// collectValues fills the template's required fields. Interactive prompting
// runs first so the guest's details exist before the note prompt is built;
// the note placeholder itself is never prompted for when enrichment will
// supply it. An explicit value for the note placeholder wins over the
// generated one.
func collectValues(t templates.Template, values map[string]string, opts collectOptions, in io.Reader, out io.Writer) error {
	if opts.Interactive {
		var skip []string
		if opts.Enrich {
			skip = []string{opts.NoteVariable}
		}
		if err := promptMissing(t, values, skip, in, out); err != nil {
			return err
		}
	}

	if opts.Enrich {
		if _, ok := values[opts.NoteVariable]; ok {
			log.Debug().Str("variable", opts.NoteVariable).
				Msg("note value supplied explicitly, skipping generation")
			return nil
		}
		note, err := opts.Generate(enrich.Guest{
			Name:        values["guest_name"],
			StayContext: opts.StayContext,
		})
		if err != nil {
			return err
		}
		values[opts.NoteVariable] = note
	}
	return nil
}

// parseSetValues turns repeated KEY=VALUE pairs into a values map.
func parseSetValues(pairs []string) (map[string]string, error) {
	values := map[string]string{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q: expected KEY=VALUE", pair)
		}
		values[key] = value
	}
	return values, nil
}

// promptMissing asks for each required field that has no value yet, one per
// line, reading answers from in. Fields named in skip are left alone.
func promptMissing(t templates.Template, values map[string]string, skip []string, in io.Reader, out io.Writer) error {
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}

	reader := bufio.NewReader(in)
	for _, field := range templates.RequiredFields(t) {
		if _, ok := values[field]; ok {
			continue
		}
		if skipped[field] {
			continue
		}
		fmt.Fprintf(out, "%s: ", fieldLabel(field))
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input for %s: %w", field, err)
		}
		values[field] = strings.TrimRight(line, "\r\n")
		if err == io.EOF {
			break
		}
	}
	return nil
}

// formatMessage lays out the message the way it would be pasted into a mail
// client: optional To and Subject headers, then the body.
func formatMessage(msg render.Message) string {
	var b strings.Builder
	if msg.To != "" {
		fmt.Fprintf(&b, "To: %s\n", msg.To)
	}
	if msg.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(msg.Body)
	if !strings.HasSuffix(msg.Body, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}
