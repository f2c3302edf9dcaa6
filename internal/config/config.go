package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the application configuration
type Config struct {
	General struct {
		Templates string `koanf:"templates"`
		LogLevel  string `koanf:"log_level"`
	} `koanf:"general"`

	Enrichment struct {
		Enabled     bool          `koanf:"enabled"`
		Provider    string        `koanf:"provider"`
		APIKey      string        `koanf:"api_key"`
		BaseURL     string        `koanf:"base_url"`
		Model       string        `koanf:"model"`
		Temperature float64       `koanf:"temperature"`
		Timeout     time.Duration `koanf:"timeout"`
		OnFailure   string        `koanf:"on_failure"`
		Variable    string        `koanf:"variable"`
	} `koanf:"enrichment"`
}

// Enrichment failure policies.
const (
	OnFailureBlank = "blank"
	OnFailureAbort = "abort"
)

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"general.templates":     "templates.json",
		"general.log_level":     "info",
		"enrichment.enabled":    false,
		"enrichment.timeout":    "15s",
		"enrichment.on_failure": OnFailureBlank,
		"enrichment.variable":   "personal_note",
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		// Try to load from default locations
		defaultPaths := []string{"./guestmail.toml", "$HOME/.guestmail.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Load from environment variables with prefix GUESTMAIL_
	// GUESTMAIL_ENRICHMENT_API_KEY -> enrichment.api_key
	k.Load(env.Provider("GUESTMAIL_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "GUESTMAIL_"))
		return strings.Replace(s, "_", ".", 1)
	}), nil)

	// Unmarshal into Config struct
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	// Create sample configuration
	sampleConfig := `# guestmail configuration

[general]
templates = "templates.json"
log_level = "info"

[enrichment]
enabled = false
provider = "openai"
api_key = "your-api-key"
model = "gpt-4o-mini"
temperature = 0.7
timeout = "15s"
# What to do when the enrichment call fails after one retry:
#   "blank" - render with an empty personal note
#   "abort" - fail the whole invocation
on_failure = "blank"
# Placeholder name the generated note is spliced into.
variable = "personal_note"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.General.Templates == "" {
		return fmt.Errorf("templates file path is required")
	}

	switch config.Enrichment.OnFailure {
	case OnFailureBlank, OnFailureAbort:
	default:
		return fmt.Errorf("enrichment on_failure must be %q or %q, got %q",
			OnFailureBlank, OnFailureAbort, config.Enrichment.OnFailure)
	}

	if !config.Enrichment.Enabled {
		return nil
	}

	switch config.Enrichment.Provider {
	case "openai", "gemini":
		if config.Enrichment.APIKey == "" {
			return fmt.Errorf("enrichment api_key is required for provider %s", config.Enrichment.Provider)
		}
	case "ollama":
		// Local provider, no key needed.
	case "":
		return fmt.Errorf("enrichment provider is required when enrichment is enabled")
	default:
		return fmt.Errorf("unsupported enrichment provider: %s", config.Enrichment.Provider)
	}

	if config.Enrichment.Timeout <= 0 {
		return fmt.Errorf("enrichment timeout must be positive")
	}
	if config.Enrichment.Variable == "" {
		return fmt.Errorf("enrichment variable name is required")
	}

	return nil
}
