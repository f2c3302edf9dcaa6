package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guestmail/internal/config"
	"github.com/guestmail/internal/retry"
)

// noteMaxTokens bounds the generated fragment; a personal note is one or
// two sentences, not a letter.
const noteMaxTokens = 160

// Policy is what the service does when the enrichment call fails after its
// single retry.
type Policy string

const (
	// PolicyBlank substitutes an empty note and lets the render proceed.
	PolicyBlank Policy = config.OnFailureBlank
	// PolicyAbort fails the whole invocation.
	PolicyAbort Policy = config.OnFailureAbort
)

// Guest is the context handed to the text-generation call.
type Guest struct {
	Name        string
	StayContext string
}

// CallError reports a failed enrichment call (timeout or provider error).
type CallError struct {
	Provider string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("enrich: %s call failed: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// generator is the slice of Connector the service needs; tests substitute
// their own.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service produces short personal-note fragments for rendered messages.
type Service struct {
	gen      generator
	provider string
	timeout  time.Duration
	policy   Policy
	retryCfg retry.Config
	log      zerolog.Logger
}

// NewService builds a Service from configuration, constructing the
// langchain connector for the configured provider.
func NewService(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Service, error) {
	conn, err := NewConnector(ctx, ConnectorOptions{
		Provider:    Provider(cfg.Enrichment.Provider),
		APIKey:      cfg.Enrichment.APIKey,
		BaseURL:     cfg.Enrichment.BaseURL,
		Model:       cfg.Enrichment.Model,
		Temperature: cfg.Enrichment.Temperature,
	})
	if err != nil {
		return nil, err
	}
	return newService(conn, cfg.Enrichment.Provider, cfg.Enrichment.Timeout, Policy(cfg.Enrichment.OnFailure), log), nil
}

func newService(gen generator, provider string, timeout time.Duration, policy Policy, log zerolog.Logger) *Service {
	return &Service{
		gen:      gen,
		provider: provider,
		timeout:  timeout,
		policy:   policy,
		retryCfg: retry.EnrichmentConfig(),
		log:      log,
	}
}

// PersonalNote generates a 1-2 sentence note for the guest. The call is
// bounded by the configured timeout and retried at most once, and only for
// transient failures. On final failure the configured policy applies:
// PolicyBlank returns "" with no error, PolicyAbort returns a *CallError.
func (s *Service) PersonalNote(ctx context.Context, guest Guest) (string, error) {
	prompt := notePrompt(guest)

	var note string
	result := retry.Do(ctx, s.retryCfg, s.log, func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.gen.Generate(callCtx, prompt)
		if err != nil {
			return err
		}
		note = strings.TrimSpace(text)
		return nil
	})

	if !result.Success {
		callErr := &CallError{Provider: s.provider, Err: result.LastError}
		if s.policy == PolicyAbort {
			return "", callErr
		}
		s.log.Warn().Err(callErr).Int("attempts", result.Attempts).
			Msg("enrichment failed, rendering with blank note")
		return "", nil
	}

	s.log.Debug().Int("attempts", result.Attempts).Int("note_length", len(note)).
		Msg("enrichment note generated")
	return note, nil
}

// notePrompt builds the short fixed prompt for the note fragment.
func notePrompt(guest Guest) string {
	var b strings.Builder
	b.WriteString("You are a hotel front-desk assistant. Write a warm, personal note of one or two sentences for the guest named ")
	b.WriteString(guest.Name)
	b.WriteString(".")
	if guest.StayContext != "" {
		b.WriteString(" Stay context: ")
		b.WriteString(guest.StayContext)
		b.WriteString(".")
	}
	b.WriteString(" Reply with the note only, without any greeting, signature, or quotation marks.")
	return b.String()
}
