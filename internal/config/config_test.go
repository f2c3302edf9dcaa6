package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guestmail.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "templates.json", cfg.General.Templates)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.False(t, cfg.Enrichment.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Enrichment.Timeout)
	assert.Equal(t, OnFailureBlank, cfg.Enrichment.OnFailure)
	assert.Equal(t, "personal_note", cfg.Enrichment.Variable)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[general]
templates = "hotel-templates.json"
log_level = "debug"

[enrichment]
enabled = true
provider = "ollama"
model = "llama3"
timeout = "5s"
on_failure = "abort"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "hotel-templates.json", cfg.General.Templates)
	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.True(t, cfg.Enrichment.Enabled)
	assert.Equal(t, "ollama", cfg.Enrichment.Provider)
	assert.Equal(t, 5*time.Second, cfg.Enrichment.Timeout)
	assert.Equal(t, OnFailureAbort, cfg.Enrichment.OnFailure)
	// Untouched keys keep their defaults.
	assert.Equal(t, "personal_note", cfg.Enrichment.Variable)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
[general]
templates = "from-file.json"
`)
	t.Setenv("GUESTMAIL_GENERAL_TEMPLATES", "from-env.json")
	t.Setenv("GUESTMAIL_ENRICHMENT_API_KEY", "secret-from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.General.Templates)
	assert.Equal(t, "secret-from-env", cfg.Enrichment.APIKey)
}

func TestLoadConfig_ExplicitMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, Validate(base()))
	})

	t.Run("bad on_failure policy", func(t *testing.T) {
		cfg := base()
		cfg.Enrichment.OnFailure = "retry-forever"
		assert.Error(t, Validate(cfg))
	})

	t.Run("enabled enrichment requires provider", func(t *testing.T) {
		cfg := base()
		cfg.Enrichment.Enabled = true
		assert.Error(t, Validate(cfg))
	})

	t.Run("openai requires api key", func(t *testing.T) {
		cfg := base()
		cfg.Enrichment.Enabled = true
		cfg.Enrichment.Provider = "openai"
		assert.Error(t, Validate(cfg))

		cfg.Enrichment.APIKey = "k"
		assert.NoError(t, Validate(cfg))
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		cfg := base()
		cfg.Enrichment.Enabled = true
		cfg.Enrichment.Provider = "ollama"
		assert.NoError(t, Validate(cfg))
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.Enrichment.Enabled = true
		cfg.Enrichment.Provider = "carrier-pigeon"
		assert.Error(t, Validate(cfg))
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := base()
		cfg.Enrichment.Enabled = true
		cfg.Enrichment.Provider = "ollama"
		cfg.Enrichment.Timeout = 0
		assert.Error(t, Validate(cfg))
	})
}

func TestInitConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guestmail.toml")
	require.NoError(t, InitConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "templates.json", cfg.General.Templates)

	assert.Error(t, InitConfig(path))
}
