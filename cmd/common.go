package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/guestmail/internal/config"
	"github.com/guestmail/internal/logging"
	"github.com/guestmail/internal/templates"
)

// loadConfig loads and validates the configuration for a command, then
// configures logging from it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logging.Setup(cfg.General.LogLevel)
	return cfg, nil
}

func openStore(cfg *config.Config) (*templates.Store, error) {
	return templates.Load(cfg.General.Templates)
}

// fieldLabel turns a placeholder name into a prompt label:
// "check_in_date" -> "Check In Date".
func fieldLabel(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
