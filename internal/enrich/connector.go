package enrich

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Provider represents a text-generation backend type
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// ConnectorOptions contains options for creating a connector
type ConnectorOptions struct {
	Provider    Provider
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// Connector represents a connection to a text-generation provider
type Connector struct {
	provider Provider
	llm      llms.Model
	options  ConnectorOptions
}

// NewConnector creates a new connector for the specified provider
func NewConnector(ctx context.Context, options ConnectorOptions) (*Connector, error) {
	var model llms.Model
	var err error

	log.Debug().
		Str("provider", string(options.Provider)).
		Str("model", options.Model).
		Float64("temperature", options.Temperature).
		Msg("Creating enrichment connector")

	switch options.Provider {
	case ProviderOpenAI:
		model, err = createOpenAIModel(options)
	case ProviderGemini:
		model, err = createGeminiModel(ctx, options)
	case ProviderOllama:
		model, err = createOllamaModel(options)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", options.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create model for provider %s: %w", options.Provider, err)
	}

	return &Connector{
		provider: options.Provider,
		llm:      model,
		options:  options,
	}, nil
}

// Generate produces a completion for prompt using the configured model.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	opts := []llms.CallOption{
		llms.WithMaxTokens(noteMaxTokens),
	}
	if c.options.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(c.options.Temperature))
	}
	return llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, opts...)
}

func createOpenAIModel(options ConnectorOptions) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithToken(options.APIKey),
	}
	if options.Model != "" {
		opts = append(opts, openai.WithModel(options.Model))
	}
	if options.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(options.BaseURL))
	}
	return openai.New(opts...)
}

func createGeminiModel(ctx context.Context, options ConnectorOptions) (llms.Model, error) {
	opts := []googleai.Option{
		googleai.WithAPIKey(options.APIKey),
	}
	if options.Model != "" {
		opts = append(opts, googleai.WithDefaultModel(options.Model))
	}
	return googleai.New(ctx, opts...)
}

func createOllamaModel(options ConnectorOptions) (llms.Model, error) {
	opts := []ollama.Option{}
	if options.Model != "" {
		opts = append(opts, ollama.WithModel(options.Model))
	}
	if options.BaseURL != "" {
		opts = append(opts, ollama.WithServerURL(options.BaseURL))
	}
	return ollama.New(opts...)
}
