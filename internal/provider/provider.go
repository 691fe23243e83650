// Package provider abstracts the completion provider behind a single
// capability: turn a prompt into generated text. The concrete variant
// (OpenAI, Anthropic, or a local Ollama server) is chosen once at startup
// from configuration.
package provider

import (
	"context"
	"fmt"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/config"
)

// Kind classifies provider failures for the HTTP surface.
type Kind string

const (
	// KindAuth covers missing or rejected credentials.
	KindAuth Kind = "auth"
	// KindNetwork covers connection and timeout failures.
	KindNetwork Kind = "network"
	// KindRateLimit covers upstream throttling.
	KindRateLimit Kind = "rate_limit"
	// KindMalformed covers empty or unparseable provider responses.
	KindMalformed Kind = "malformed_response"
	// KindUpstream covers any other non-success provider response.
	KindUpstream Kind = "upstream"
)

// Error is a typed provider failure carrying its classification and cause.
type Error struct {
	Provider string
	Kind     Kind
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(provider string, kind Kind, err error) *Error {
	return &Error{Provider: provider, Kind: kind, Err: err}
}

// classifyStatus maps an upstream HTTP status to a failure kind.
func classifyStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	default:
		return KindUpstream
	}
}

// Generator is the completion capability. One blocking call per invocation;
// cancellation and deadlines come from ctx. Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
	// Name reports the provider variant for logging.
	Name() string
}

// New builds the configured provider variant.
func New(cfg *config.Config) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	case config.ProviderAnthropic:
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case config.ProviderOllama:
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaModel)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
