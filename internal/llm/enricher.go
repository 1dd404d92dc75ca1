package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/culturecoders/culturebot/internal/model"
)

// ErrDisabled is returned by Enrich when no provider is configured
var ErrDisabled = errors.New("LLM enrichment disabled")

// Enrichment is an LLM-written answer grounded on matched facts
type Enrichment struct {
	Text       string
	Provider   string
	Model      string
	TokensUsed int
	Confidence float64
}

// Enricher asks an LLM provider to answer a question with fact context.
// The zero provider means disabled; callers fall back to templated answers.
type Enricher struct {
	provider Provider
	config   Config
}

// NewEnricher creates an enricher for the configured provider
func NewEnricher(config Config) (*Enricher, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Enricher{
		provider: provider,
		config:   config,
	}, nil
}

// NewEnricherWithProvider wraps an existing provider
func NewEnricherWithProvider(provider Provider, config Config) *Enricher {
	return &Enricher{
		provider: provider,
		config:   config,
	}
}

// IsEnabled reports whether a provider is configured
func (e *Enricher) IsEnabled() bool {
	return e != nil && e.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (e *Enricher) ProviderName() string {
	if !e.IsEnabled() {
		return ""
	}
	return e.provider.Name()
}

// Model returns the configured model name
func (e *Enricher) Model() string {
	if e == nil {
		return ""
	}
	return e.config.Model
}

// Timeout is the request timeout for one enrichment, or 0 when disabled
func (e *Enricher) Timeout() time.Duration {
	if !e.IsEnabled() {
		return 0
	}
	return e.config.requestTimeout(e.provider.Name())
}

// Ping checks the provider
func (e *Enricher) Ping(ctx context.Context) error {
	if !e.IsEnabled() {
		return ErrDisabled
	}
	return e.provider.Ping(ctx)
}

// Enrich answers query with the matched facts as context
func (e *Enricher) Enrich(ctx context.Context, query string, facts []model.Fact) (*Enrichment, error) {
	if !e.IsEnabled() {
		return nil, ErrDisabled
	}

	resp, err := e.provider.Complete(ctx, CompletionRequest{
		System:      SystemPrompt,
		Prompt:      BuildPrompt(query, facts),
		Model:       e.config.Model,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.provider.Name(), err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		return nil, fmt.Errorf("%s returned an empty completion", e.provider.Name())
	}

	return &Enrichment{
		Text:       resp.Text,
		Provider:   e.provider.Name(),
		Model:      resp.Model,
		TokensUsed: resp.TokensUsed,
		Confidence: Confidence(query, facts),
	}, nil
}

// Confidence scores an enriched answer: 0.8 base, up to 0.15 more for
// supporting facts, 0.05 more for a specific (longer than five words)
// question, never above 0.95.
func Confidence(query string, facts []model.Fact) float64 {
	confidence := 0.8

	if len(facts) > 0 {
		confidence += min(float64(len(facts))*0.05, 0.15)
	}

	if len(strings.Fields(query)) > 5 {
		confidence += 0.05
	}

	return min(confidence, 0.95)
}
